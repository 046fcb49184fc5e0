package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		spec          string
		errorContains string
	}{
		{name: "6필드", spec: "0 */10 * * * *"},
		{name: "요일 범위", spec: "0 0-30/5 9-17 * * MON-FRI"},
		{name: "앞뒤 공백", spec: " 0 * * * * * "},
		{name: "@every", spec: "@every 30s"},
		{name: "@hourly", spec: "@hourly"},
		{name: "5필드는 지원하지 않는다", spec: "*/5 * * * *", errorContains: "expected exactly 6 fields"},
		{name: "빈 문자열", spec: "", errorContains: "empty spec string"},
		{name: "잘못된 문자열", spec: "invalid-cron", errorContains: "Cron 표현식 파싱 실패"},
		{name: "초 범위 초과", spec: "60 * * * * *", errorContains: "Cron 표현식 파싱 실패"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestStandardParser_NextSchedule(t *testing.T) {
	schedule, err := StandardParser().Parse("30 * * * * *")
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(30*time.Second), schedule.Next(base))
}
