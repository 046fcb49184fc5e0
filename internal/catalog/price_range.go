package catalog

import (
	"encoding/json"
	"math"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// PriceRange [Min, Max) 가격 구간입니다. Max는 +Inf일 수 있습니다.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Contains price가 이 구간에 속하는지 검사합니다.
func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price < r.Max
}

// Unbounded 상한이 없는 마지막 구간인지 여부입니다.
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

// priceRangeJSON JSON은 +Inf를 표현할 수 없으므로 상한이 없으면 max를 null로 직렬화한다.
type priceRangeJSON struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
}

func (r PriceRange) MarshalJSON() ([]byte, error) {
	w := priceRangeJSON{Label: r.Label, Min: r.Min}
	if !r.Unbounded() {
		max := r.Max
		w.Max = &max
	}
	return json.Marshal(w)
}

func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var w priceRangeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = PriceRange{Label: w.Label, Min: w.Min, Max: math.Inf(1)}
	if w.Max != nil {
		r.Max = *w.Max
	}
	return nil
}

var defaultPriceRanges = []PriceRange{
	{Label: "Under $50", Min: 0, Max: 50},
	{Label: "$50 - $100", Min: 50, Max: 100},
	{Label: "$100 - $200", Min: 100, Max: 200},
	{Label: "$200 - $500", Min: 200, Max: 500},
	{Label: "$500 - $1000", Min: 500, Max: 1000},
	{Label: "Over $1000", Min: 1000, Max: math.Inf(1)},
}

// DefaultPriceRanges 분석 전반에 쓰이는 고정 6구간 분할의 복사본을 반환합니다.
func DefaultPriceRanges() []PriceRange {
	ranges := make([]PriceRange, len(defaultPriceRanges))
	copy(ranges, defaultPriceRanges)
	return ranges
}

// ValidateRanges 구간이 0부터 시작해 빈틈과 겹침 없이 이어지고 +Inf에서 끝나는지 검사합니다.
// 이 조건을 만족하면 모든 0 이상의 가격은 정확히 하나의 구간에 속합니다.
func ValidateRanges(ranges []PriceRange) error {
	if len(ranges) == 0 {
		return apperrors.New(apperrors.InvalidInput, "가격 구간이 비어 있습니다")
	}
	if ranges[0].Min != 0 {
		return apperrors.Newf(apperrors.InvalidInput, "첫 번째 가격 구간(%s)은 0에서 시작해야 합니다", ranges[0].Label)
	}

	for i, r := range ranges {
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min >= r.Max {
			return apperrors.Newf(apperrors.InvalidInput, "가격 구간(%s)의 범위가 올바르지 않습니다: [%v, %v)", r.Label, r.Min, r.Max)
		}
		if i > 0 && ranges[i-1].Max != r.Min {
			return apperrors.Newf(apperrors.InvalidInput, "가격 구간(%s, %s)이 연속되지 않습니다", ranges[i-1].Label, r.Label)
		}
	}

	if last := ranges[len(ranges)-1]; !last.Unbounded() {
		return apperrors.Newf(apperrors.InvalidInput, "마지막 가격 구간(%s)은 상한이 없어야 합니다", last.Label)
	}

	return nil
}
