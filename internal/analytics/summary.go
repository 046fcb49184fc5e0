package analytics

import (
	"math"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// uniqueVisitorRatio 대시보드가 순방문자 수를 추정할 때 전체 클릭 수에 곱하는 비율
const uniqueVisitorRatio = 0.7

// Summary 카탈로그 전체 요약 통계입니다.
type Summary struct {
	TotalProducts           int     `json:"total_products"`
	TotalSales              int     `json:"total_sales"`
	TotalClicks             int     `json:"total_clicks"`
	TotalViews              int     `json:"total_views"`
	EstimatedUniqueVisitors int     `json:"estimated_unique_visitors"`
	AveragePrice            float64 `json:"average_price"`
	MaxPrice                float64 `json:"max_price"`
	MinPrice                float64 `json:"min_price"`
	TotalRevenue            float64 `json:"total_revenue"`
	TrendingCount           int     `json:"trending_count"`
}

// Summarize 집계 대상 상품만으로 요약 통계를 계산합니다. 빈 카탈로그는 모든 값이 0입니다.
// TotalRevenue는 Σ(price × sales), TrendingCount는 Hot 또는 Trending 상태인 상품 수입니다.
func Summarize(products []catalog.Product) Summary {
	var (
		s        Summary
		priceSum float64
	)

	for _, p := range products {
		if !analyzable(p) {
			continue
		}

		if s.TotalProducts == 0 {
			s.MaxPrice, s.MinPrice = p.Price, p.Price
		} else {
			s.MaxPrice = math.Max(s.MaxPrice, p.Price)
			s.MinPrice = math.Min(s.MinPrice, p.Price)
		}

		s.TotalProducts++
		s.TotalSales += p.Sales
		s.TotalClicks += p.Clicks
		s.TotalViews += p.Views
		s.TotalRevenue += p.Price * float64(p.Sales)
		priceSum += p.Price

		if p.Status.IsTrending() {
			s.TrendingCount++
		}
	}

	if s.TotalProducts > 0 {
		s.AveragePrice = priceSum / float64(s.TotalProducts)
	}
	s.EstimatedUniqueVisitors = int(math.Floor(float64(s.TotalClicks) * uniqueVisitorRatio))

	return s
}
