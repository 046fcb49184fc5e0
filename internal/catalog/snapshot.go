package catalog

import (
	"time"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// Rejected 스냅샷에 포함되지 못한 레코드와 그 사유입니다.
type Rejected struct {
	Product Product
	Err     error
}

// Snapshot 한 시점에 조회된 카탈로그 전체입니다. 생성 후 변경되지 않습니다.
// 상품 순서는 의미가 없지만 조회된 순서를 유지하며, 추천 후보 선정 등은 이 순서를 따릅니다.
type Snapshot struct {
	products  []Product
	index     map[ProductID]int
	fetchedAt time.Time
}

// NewSnapshot 유효하지 않은 레코드와 중복 ID(먼저 나온 것이 유지됨)를 제외하고 스냅샷을 생성합니다.
// 제외된 레코드는 호출자가 로그를 남기거나 무시할 수 있도록 사유와 함께 반환됩니다.
func NewSnapshot(products []Product, fetchedAt time.Time) (*Snapshot, []Rejected) {
	s := &Snapshot{
		products:  make([]Product, 0, len(products)),
		index:     make(map[ProductID]int, len(products)),
		fetchedAt: fetchedAt,
	}

	var rejected []Rejected
	for _, p := range products {
		if err := p.Validate(); err != nil {
			rejected = append(rejected, Rejected{Product: p, Err: err})
			continue
		}
		if _, dup := s.index[p.ID]; dup {
			rejected = append(rejected, Rejected{
				Product: p,
				Err:     apperrors.Newf(apperrors.Conflict, "중복된 상품 ID입니다: %s", p.ID),
			})
			continue
		}

		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	return s, rejected
}

// EmptySnapshot 상품이 없는 스냅샷입니다. 최초 조회 전의 초기값으로 사용합니다.
func EmptySnapshot() *Snapshot {
	s, _ := NewSnapshot(nil, time.Time{})
	return s
}

// Products 상품 목록의 복사본을 반환합니다.
func (s *Snapshot) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find id에 해당하는 상품을 찾습니다.
func (s *Snapshot) Find(id ProductID) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *Snapshot) Len() int { return len(s.products) }

// FetchedAt 카탈로그를 조회한 시각입니다. 아직 조회하지 않았다면 zero value입니다.
func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }
