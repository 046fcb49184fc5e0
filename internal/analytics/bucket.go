package analytics

import (
	"github.com/darkkaiser/catalog-insight/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

var defaultRanges = catalog.DefaultPriceRanges()

// Classify 기본 6구간 분할에서 price가 속하는 구간을 반환합니다.
// 음수, NaN, 무한대 가격은 InvalidInput 에러입니다.
func Classify(price float64) (catalog.PriceRange, error) {
	return ClassifyIn(defaultRanges, price)
}

// ClassifyIn ranges를 앞에서부터 훑어 Min <= price < Max를 만족하는 첫 구간을 반환합니다.
func ClassifyIn(ranges []catalog.PriceRange, price float64) (catalog.PriceRange, error) {
	i, err := bucketIndex(ranges, price)
	if err != nil {
		return catalog.PriceRange{}, err
	}
	return ranges[i], nil
}

func bucketIndex(ranges []catalog.PriceRange, price float64) (int, error) {
	if !validPrice(price) {
		return -1, apperrors.Newf(apperrors.InvalidInput, "가격은 0 이상이어야 합니다: %v", price)
	}

	for i, r := range ranges {
		if r.Contains(price) {
			return i, nil
		}
	}

	// 연속적이고 상한이 +Inf인 구간표라면 도달하지 않는다.
	return -1, apperrors.Newf(apperrors.Internal, "가격(%v)이 속하는 구간이 없습니다", price)
}
