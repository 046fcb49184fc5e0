package analytics

import "github.com/darkkaiser/catalog-insight/internal/catalog"

// DefaultTopSalesLimit 판매 분포 차트에 기본으로 표시하는 상품 수
const DefaultTopSalesLimit = 6

// SalesShare 판매 분포 차트의 한 조각입니다.
type SalesShare struct {
	ProductID catalog.ProductID `json:"product_id"`
	Name      string            `json:"name"`
	Sales     int               `json:"sales"`
}

// TopSales 카탈로그 순서상 앞의 n개 상품의 이름과 판매량을 반환합니다. n이 0 이하이면 빈 목록입니다.
// 카탈로그 서비스가 인기순으로 내려준 순서를 그대로 사용하며 다시 정렬하지 않습니다.
func TopSales(products []catalog.Product, n int) []SalesShare {
	if n <= 0 {
		return []SalesShare{}
	}
	if n > len(products) {
		n = len(products)
	}

	out := make([]SalesShare, 0, n)
	for _, p := range products[:n] {
		out = append(out, SalesShare{ProductID: p.ID, Name: p.Name, Sales: p.Sales})
	}
	return out
}
