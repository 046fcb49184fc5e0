package analytics

import (
	"math"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// MaxCandidates 추천 목록별 최대 항목 수입니다. 순위가 아니라 카탈로그 순서상 앞의 항목만 남깁니다.
const MaxCandidates = 3

const (
	increaseMinSales = 100
	increaseMaxPrice = 200
	increaseRate     = 0.20

	decreaseMaxSales = 50
	decreaseMinPrice = 500
	decreaseRate     = 0.15

	optimalMinRatio = 0.3
	optimalMaxRatio = 0.7
)

// Candidate 추천 대상 상품과 제안 가격 변동폭입니다.
// SuggestedDelta는 인상이면 양수, 인하면 음수이고 최적가 후보는 0입니다.
type Candidate struct {
	Product        catalog.Product `json:"product"`
	ValueRatio     float64         `json:"value_ratio"`
	SuggestedDelta float64         `json:"suggested_delta"`
}

// Recommendations 서로 독립적인 세 가지 규칙의 결과입니다.
// 한 상품이 여러 목록에 동시에 나타날 수 있습니다.
type Recommendations struct {
	PriceIncrease []Candidate `json:"price_increase"`
	Optimal       []Candidate `json:"optimal"`
	PriceDecrease []Candidate `json:"price_decrease"`
}

// Recommend 가격 인상, 최적가, 가격 인하 후보를 각각 최대 3개씩 카탈로그 순서대로 고릅니다.
//
//   - 인상: sales > 100 이고 price < 200, 제안 +round(price * 0.20)
//   - 최적: 0.3 < sales/price < 0.7, price가 0인 상품은 제외
//   - 인하: sales < 50 이고 price > 500, 제안 -round(price * 0.15)
//
// 가격이나 판매량이 올바르지 않은 상품은 어떤 목록에도 포함되지 않습니다. ID 유무는 따지지 않습니다.
func Recommend(products []catalog.Product) Recommendations {
	rec := Recommendations{
		PriceIncrease: []Candidate{},
		Optimal:       []Candidate{},
		PriceDecrease: []Candidate{},
	}

	for _, p := range products {
		if !analyzable(p) {
			continue
		}
		ratio := ValueRatio(p.Sales, p.Price)

		if len(rec.PriceIncrease) < MaxCandidates && p.Sales > increaseMinSales && p.Price < increaseMaxPrice {
			rec.PriceIncrease = append(rec.PriceIncrease, Candidate{
				Product:        p,
				ValueRatio:     ratio,
				SuggestedDelta: math.Round(p.Price * increaseRate),
			})
		}

		if len(rec.Optimal) < MaxCandidates && p.Price != 0 && ratio > optimalMinRatio && ratio < optimalMaxRatio {
			rec.Optimal = append(rec.Optimal, Candidate{Product: p, ValueRatio: ratio})
		}

		if len(rec.PriceDecrease) < MaxCandidates && p.Sales < decreaseMaxSales && p.Price > decreaseMinPrice {
			rec.PriceDecrease = append(rec.PriceDecrease, Candidate{
				Product:        p,
				ValueRatio:     ratio,
				SuggestedDelta: -math.Round(p.Price * decreaseRate),
			})
		}
	}

	return rec
}
