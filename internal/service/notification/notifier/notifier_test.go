package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifierID(t *testing.T) {
	tests := []struct {
		in   string
		want NotifierID
	}{
		{"marketing", "marketing"},
		{"Marketing Team", "marketing_team"},
		{"marketingTeam", "marketing_team"},
		{"  ops-alerts ", "ops_alerts"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNotifierID(tt.in))
		})
	}
}
