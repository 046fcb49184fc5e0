package analytics

import (
	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// RangeStats 가격 구간 하나의 집계 결과입니다.
type RangeStats struct {
	Range              catalog.PriceRange `json:"range"`
	ProductCount       int                `json:"product_count"`
	MarketSharePercent float64            `json:"market_share_percent"`
	TotalSales         int                `json:"total_sales"`
	AverageSales       float64            `json:"average_sales"`
}

// Aggregate 구간별 상품 수, 점유율(%), 판매 합계와 평균을 계산합니다.
//
// 결과는 ranges와 같은 순서이며 입력 상품의 순서와 무관합니다.
// 집계 대상이 아닌 상품(음수 가격이나 음수 판매량 등)과 분류할 수 없는 상품은
// 어떤 구간에도, 전체 상품 수에도 포함되지 않습니다.
// 상품이 없는 구간의 평균 판매량과 빈 카탈로그의 점유율은 0입니다.
func Aggregate(products []catalog.Product, ranges []catalog.PriceRange) []RangeStats {
	stats := make([]RangeStats, len(ranges))
	for i, r := range ranges {
		stats[i].Range = r
	}

	total := 0
	for _, p := range products {
		if !analyzable(p) {
			continue
		}
		i, err := bucketIndex(ranges, p.Price)
		if err != nil {
			continue
		}
		stats[i].ProductCount++
		stats[i].TotalSales += p.Sales
		total++
	}

	for i := range stats {
		if stats[i].ProductCount > 0 {
			stats[i].AverageSales = float64(stats[i].TotalSales) / float64(stats[i].ProductCount)
		}
		if total > 0 {
			stats[i].MarketSharePercent = 100 * float64(stats[i].ProductCount) / float64(total)
		}
	}

	return stats
}
