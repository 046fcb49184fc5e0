package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Hot", StatusHot},
		{"hot", StatusHot},
		{"HOT", StatusHot},
		{" Trending ", StatusTrending},
		{"regular", StatusRegular},
		{"", StatusUnknown},
		{"Legendary", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.in))
		})
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Hot", StatusHot.DisplayClass())
	assert.Equal(t, "Regular", StatusUnknown.DisplayClass(), "Unknown은 기본 표시 클래스로 떨어집니다")

	assert.Equal(t, "🔥", StatusHot.Icon())
	assert.Equal(t, "📈", StatusTrending.Icon())
	assert.Equal(t, "📊", StatusRegular.Icon())
	assert.Equal(t, StatusRegular.Icon(), StatusUnknown.Icon())

	assert.True(t, StatusHot.IsTrending())
	assert.True(t, StatusTrending.IsTrending())
	assert.False(t, StatusRegular.IsTrending())
	assert.False(t, StatusUnknown.IsTrending())
}

func TestStatus_JSON(t *testing.T) {
	var s Status
	require.NoError(t, json.Unmarshal([]byte(`42`), &s), "문자열이 아닌 값도 에러가 아닙니다")
	assert.Equal(t, StatusUnknown, s)

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, StatusUnknown, s)

	data, err := json.Marshal(StatusTrending)
	require.NoError(t, err)
	assert.Equal(t, `"Trending"`, string(data))
}
