package analytics

import (
	"math"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// validPrice 유한한 0 이상의 가격인지 확인합니다.
func validPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

// analyzable 집계, 추천, 요약이 공통으로 사용하는 상품 선별 규칙입니다.
// 가격이 유효하고 판매/클릭/조회 수가 음수가 아니면 계산에 포함하며, ID는 따지지 않습니다.
func analyzable(p catalog.Product) bool {
	return validPrice(p.Price) && p.Sales >= 0 && p.Clicks >= 0 && p.Views >= 0
}
