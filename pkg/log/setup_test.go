package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState 테스트 간 독립성을 위해 패키지 전역 상태와 logrus 전역 설정을 초기화합니다.
func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Missing Name",
			opts:        Options{Dir: t.TempDir()},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name:        "Dir Conflicts with Existing File",
			opts:        Options{Name: "check-file", Dir: tempFile},
			expectError: "이미 파일로 존재합니다",
		},
		{
			name:        "Negative MaxAge",
			opts:        Options{Name: "app", Dir: t.TempDir(), MaxAge: -1},
			expectError: "MaxAge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState()
			defer resetGlobalState()

			_, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_DefaultsAndFiles(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	dir := t.TempDir()
	cl, err := Setup(Options{
		Name:              "catalog",
		Dir:               dir,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "기본 로그 레벨은 Info여야 합니다")

	c, ok := cl.(*closer)
	require.True(t, ok)
	assert.Len(t, c.closers, 3, "main, critical, verbose 세 개의 파일이 생성되어야 합니다")

	WithComponent("test").Error("critical message")
	require.NoError(t, cl.Close())

	main, err := os.ReadFile(filepath.Join(dir, "catalog.log"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "critical message")
	assert.Contains(t, string(main), "component=test")

	critical, err := os.ReadFile(filepath.Join(dir, "catalog.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(critical), "critical message")
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	first, err := Setup(Options{Name: "first", Dir: t.TempDir()})
	require.NoError(t, err)
	defer first.Close()

	second, err := Setup(Options{Name: "second", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Same(t, first, second, "두 번째 호출은 최초 Closer를 그대로 반환해야 합니다")
}

func TestCloser_Idempotent(t *testing.T) {
	c := &closer{hook: &hook{}}
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.True(t, c.hook.closed)
}

func TestWithComponentAndFields_DoesNotMutateInput(t *testing.T) {
	fields := Fields{"product_id": "p-1"}
	entry := WithComponentAndFields("alert", fields)

	assert.Equal(t, "alert", entry.Data["component"])
	assert.Equal(t, "p-1", entry.Data["product_id"])
	assert.NotContains(t, fields, "component")
}
