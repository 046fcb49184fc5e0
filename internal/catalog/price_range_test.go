package catalog

import (
	"encoding/json"
	"math"
	"testing"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPriceRanges(t *testing.T) {
	ranges := DefaultPriceRanges()
	require.Len(t, ranges, 6)
	require.NoError(t, ValidateRanges(ranges))

	assert.Equal(t, "Under $50", ranges[0].Label)
	assert.Equal(t, "Over $1000", ranges[5].Label)
	assert.True(t, ranges[5].Unbounded())

	ranges[0].Label = "changed"
	assert.Equal(t, "Under $50", DefaultPriceRanges()[0].Label, "반환값을 수정해도 원본에 영향이 없어야 합니다")
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Label: "$50 - $100", Min: 50, Max: 100}
	assert.True(t, r.Contains(50), "하한은 포함")
	assert.True(t, r.Contains(99.99))
	assert.False(t, r.Contains(100), "상한은 제외")
	assert.False(t, r.Contains(49.99))
}

func TestValidateRanges(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name    string
		ranges  []PriceRange
		wantErr bool
	}{
		{"기본 구간", DefaultPriceRanges(), false},
		{"단일 구간", []PriceRange{{"All", 0, inf}}, false},
		{"빈 구간", nil, true},
		{"0에서 시작하지 않음", []PriceRange{{"a", 10, inf}}, true},
		{"빈틈", []PriceRange{{"a", 0, 10}, {"b", 20, inf}}, true},
		{"겹침", []PriceRange{{"a", 0, 20}, {"b", 10, inf}}, true},
		{"상한 있음", []PriceRange{{"a", 0, 10}, {"b", 10, 100}}, true},
		{"역전", []PriceRange{{"a", 0, 10}, {"b", 10, 5}, {"c", 5, inf}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRanges(tt.ranges)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

func TestPriceRange_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultPriceRanges()[4:])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label":"$500 - $1000","min":500,"max":1000},{"label":"Over $1000","min":1000,"max":null}]`, string(data))

	var decoded []PriceRange
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, DefaultPriceRanges()[4:], decoded)
}
