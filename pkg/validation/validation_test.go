package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	tests := []struct {
		origin  string
		wantErr bool
	}{
		{"*", false},
		{"https://example.com", false},
		{"http://localhost:3000", false},
		{"http://127.0.0.1:8080", false},
		{"https://sub.example.co.kr", false},
		{"", true},
		{"https://example.com/", true},
		{"https://example.com/path", true},
		{"ftp://example.com", true},
		{"https://example.com?q=1", true},
		{"https://user@example.com", true},
		{"http://localhost:70000", true},
		{"https://-bad.com", true},
		{"https://example.123", true},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateHTTPURL(t *testing.T) {
	assert.NoError(t, ValidateHTTPURL("https://catalog.example.com/api/products"))
	assert.NoError(t, ValidateHTTPURL("http://localhost:5000/api/categories"))
	assert.Error(t, ValidateHTTPURL("catalog.example.com/api"))
	assert.Error(t, ValidateHTTPURL("ftp://example.com"))
	assert.Error(t, ValidateHTTPURL("http://"))
}
