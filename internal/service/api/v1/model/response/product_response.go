package response

import (
	"time"

	"github.com/darkkaiser/catalog-insight/internal/analytics"
	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// ProductView 대시보드 표시용 파생 값이 포함된 상품 정보
type ProductView struct {
	catalog.Product

	// 가격 구간 라벨
	PriceRange string `json:"price_range" example:"$50 - $100"`
	// 판매량 / 가격
	ValueRatio float64 `json:"value_ratio" example:"1.67"`
	// 가성비 등급: Excellent, Good, Fair, Poor
	ValueRating analytics.ValueRating `json:"value_rating" example:"Excellent"`
	// 클릭 증가율이 급등 기준을 넘었는지 여부
	ClickSurging bool `json:"click_surging" example:"true"`
	// 분류 아이콘
	CategoryIcon string `json:"category_icon" example:"🎧"`
	// 상태 아이콘
	StatusIcon string `json:"status_icon" example:"🔥"`
	// 상태 표시 클래스
	StatusClass string `json:"status_class" example:"Hot"`
}

// NewProductView 상품의 파생 값을 계산합니다. 가격 구간을 분류할 수 없으면 빈 문자열입니다.
func NewProductView(p catalog.Product) ProductView {
	v := ProductView{
		Product:      p,
		ValueRatio:   analytics.ValueRatio(p.Sales, p.Price),
		ClickSurging: p.ClickSurging(),
		CategoryIcon: p.Category.Icon(),
		StatusIcon:   p.Status.Icon(),
		StatusClass:  p.Status.DisplayClass(),
	}
	if r, err := analytics.Classify(p.Price); err == nil {
		v.PriceRange = r.Label
	}
	if rating, err := analytics.Rate(p.Sales, p.Price); err == nil {
		v.ValueRating = rating
	}
	return v
}

// ProductListResponse 상품 목록 조회 응답
type ProductListResponse struct {
	// 필터 적용 후 상품 수
	Total int `json:"total" example:"12"`
	// 스냅샷 조회 시각
	FetchedAt time.Time `json:"fetched_at"`
	// 상품 목록
	Products []ProductView `json:"products"`
}

// CategoryListResponse 분류 목록 조회 응답
type CategoryListResponse struct {
	Categories []catalog.CategoryEntry `json:"categories"`
}

// PriceRangeResponse 가격 구간별 점유율 응답
type PriceRangeResponse struct {
	Ranges []analytics.RangeStats `json:"ranges"`
}

// TopSalesResponse 판매량 상위(카탈로그 순서 기준) 상품 응답
type TopSalesResponse struct {
	Limit int                    `json:"limit" example:"6"`
	Items []analytics.SalesShare `json:"items"`
}
