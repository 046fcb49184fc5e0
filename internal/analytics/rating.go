package analytics

import (
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// ValueRating 판매량 대비 가격 효율 등급입니다.
type ValueRating string

const (
	RatingExcellent ValueRating = "Excellent"
	RatingGood      ValueRating = "Good"
	RatingFair      ValueRating = "Fair"
	RatingPoor      ValueRating = "Poor"
)

// 등급 경계. 각 값을 "초과"해야 해당 등급이다.
const (
	excellentThreshold = 0.5
	goodThreshold      = 0.3
	fairThreshold      = 0.1
)

// ValueRatio sales / price 입니다. price가 0이면 효율을 계산할 수 없으므로 0을 반환합니다.
func ValueRatio(sales int, price float64) float64 {
	if price == 0 {
		return 0
	}
	return float64(sales) / price
}

// Rate 가치 비율을 등급으로 분류합니다.
// price가 0이면 비율이 0이므로 항상 Poor이며, 음수나 유한하지 않은 입력은 InvalidInput 에러입니다.
func Rate(sales int, price float64) (ValueRating, error) {
	if sales < 0 || !validPrice(price) {
		return "", apperrors.Newf(apperrors.InvalidInput, "판매량과 가격은 0 이상이어야 합니다 (sales=%d, price=%v)", sales, price)
	}

	return rateRatio(ValueRatio(sales, price)), nil
}

func rateRatio(ratio float64) ValueRating {
	switch {
	case ratio > excellentThreshold:
		return RatingExcellent
	case ratio > goodThreshold:
		return RatingGood
	case ratio > fairThreshold:
		return RatingFair
	default:
		return RatingPoor
	}
}
