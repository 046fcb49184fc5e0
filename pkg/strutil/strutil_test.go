package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"일반", "a, , b,c", []string{"a", "b", "c"}},
		{"빈 문자열", "", nil},
		{"공백만", " , ,", nil},
		{"단일", " https://example.com ", []string{"https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAndTrim(tt.in, ","))
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "***", Mask("abcd"))
	assert.Equal(t, "abcd***", Mask("abcdefgh"))
	assert.Equal(t, "1234***wxyz", Mask("123456:ABCDEFGHwxyz"))
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Wireless Headphones", "head", true},
		{"Wireless Headphones", "HEAD", true},
		{"Wireless Headphones", "", true},
		{"Wireless", "keyboard", false},
		{"ab", "abc", false},
		{"무선 이어폰 Pro", "pro", true},
		{"무선 이어폰", "이어폰", true},
	}

	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.substr, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsFold(tt.s, tt.substr))
		})
	}
}
