package catalog

import (
	"testing"
	"time"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	input := []Product{
		{ID: "a", Name: "first", Price: 10},
		{ID: "b", Price: -1},
		{ID: "a", Name: "duplicate", Price: 20},
		{ID: "", Price: 5},
		{ID: "c", Price: 0},
	}

	s, rejected := NewSnapshot(input, now)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, now, s.FetchedAt())
	require.Len(t, rejected, 3)
	assert.True(t, apperrors.Is(rejected[0].Err, apperrors.InvalidInput))
	assert.True(t, apperrors.Is(rejected[1].Err, apperrors.Conflict))
	assert.Equal(t, "duplicate", rejected[1].Product.Name)
	assert.True(t, apperrors.Is(rejected[2].Err, apperrors.InvalidInput))

	p, ok := s.Find("a")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name, "중복 ID는 먼저 나온 레코드가 유지됩니다")

	_, ok = s.Find("b")
	assert.False(t, ok)

	ids := []ProductID{}
	for _, p := range s.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []ProductID{"a", "c"}, ids, "조회 순서를 유지합니다")
}

func TestSnapshot_ProductsReturnsCopy(t *testing.T) {
	s, _ := NewSnapshot([]Product{{ID: "a", Name: "orig", Price: 1}}, time.Now())

	products := s.Products()
	products[0].Name = "mutated"

	p, _ := s.Find("a")
	assert.Equal(t, "orig", p.Name)
}

func TestEmptySnapshot(t *testing.T) {
	s := EmptySnapshot()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Products())
	assert.True(t, s.FetchedAt().IsZero())
}
