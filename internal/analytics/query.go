package analytics

import (
	"slices"
	"strings"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
	"github.com/darkkaiser/catalog-insight/pkg/strutil"
)

// FilterAll 범위/분류 필터에서 "전체"를 의미하는 값입니다. 빈 문자열도 같은 의미입니다.
const FilterAll = "All"

// SortKey 상품 목록 정렬 기준입니다. 모든 기준은 내림차순입니다.
type SortKey string

const (
	SortNone   SortKey = ""
	SortPrice  SortKey = "price"
	SortSales  SortKey = "sales"
	SortClicks SortKey = "clicks"
	SortViews  SortKey = "views"
	SortValue  SortKey = "value"
)

// ParseSortKey 대소문자를 구분하지 않고 정렬 기준을 해석합니다. 알 수 없는 값은 SortNone입니다.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPrice, SortSales, SortClicks, SortViews, SortValue:
		return k
	default:
		return SortNone
	}
}

// Query 상품 목록 조회 조건입니다.
type Query struct {
	Range    string  // 가격 구간 라벨 ("Under $50" 등)
	Category string  // 분류 라벨
	Search   string  // 상품명 부분 일치 (대소문자 무시)
	SortBy   SortKey // 정렬 기준
}

// Apply 필터를 적용한 뒤 정렬한 새 목록을 반환합니다. 입력 슬라이스는 변경하지 않습니다.
//
// 알 수 없는 가격 구간 라벨은 어떤 상품과도 일치하지 않으며, 분류할 수 없는 가격의 상품은 구간 필터가 있을 때 제외됩니다.
// 정렬은 안정 정렬이므로 값이 같은 상품은 카탈로그 순서를 유지하고, SortNone이면 카탈로그 순서 그대로입니다.
func Apply(products []catalog.Product, q Query) []catalog.Product {
	rangeFilter := strings.TrimSpace(q.Range)
	categoryFilter := strings.TrimSpace(q.Category)
	search := strings.TrimSpace(q.Search)

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if !isAll(rangeFilter) {
			r, err := Classify(p.Price)
			if err != nil || r.Label != rangeFilter {
				continue
			}
		}
		if !isAll(categoryFilter) && !p.Category.Matches(categoryFilter) {
			continue
		}
		if !strutil.ContainsFold(p.Name, search) {
			continue
		}
		out = append(out, p)
	}

	if less := sortValue(q.SortBy); less != nil {
		slices.SortStableFunc(out, func(a, b catalog.Product) int {
			va, vb := less(a), less(b)
			switch {
			case va > vb:
				return -1
			case va < vb:
				return 1
			default:
				return 0
			}
		})
	}

	return out
}

func isAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, FilterAll)
}

func sortValue(key SortKey) func(catalog.Product) float64 {
	switch key {
	case SortPrice:
		return func(p catalog.Product) float64 { return p.Price }
	case SortSales:
		return func(p catalog.Product) float64 { return float64(p.Sales) }
	case SortClicks:
		return func(p catalog.Product) float64 { return float64(p.Clicks) }
	case SortViews:
		return func(p catalog.Product) float64 { return float64(p.Views) }
	case SortValue:
		return func(p catalog.Product) float64 { return ValueRatio(p.Sales, p.Price) }
	default:
		return nil
	}
}
