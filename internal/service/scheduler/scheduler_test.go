package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/darkkaiser/catalog-insight/internal/config"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("deadline이 설정되지 않았습니다")
	}
	return r.err
}

func TestNewService(t *testing.T) {
	t.Run("Panic_NilRefresher", func(t *testing.T) {
		assert.PanicsWithValue(t, "Refresher는 필수입니다", func() {
			NewService(config.RefreshConfig{}, nil)
		})
	})

	t.Run("Success", func(t *testing.T) {
		s := NewService(config.RefreshConfig{Runnable: true, TimeSpec: "* * * * * *"}, &countingRefresher{})
		assert.NotNil(t, s)
		assert.Equal(t, defaultJobTimeout, s.jobTimeout)
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	s := NewService(config.RefreshConfig{Runnable: true, TimeSpec: "0 0 0 1 1 *"}, &countingRefresher{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	assert.True(t, s.running)
	assert.Len(t, s.cron.Entries(), 1)

	// 이미 실행 중일 때 다시 Start 호출하면 WaitGroup만 해제된다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()
	wg.Wait()

	assert.False(t, s.running)
	assert.Nil(t, s.cron)

	// 중복 Stop은 무시된다.
	s.Stop()
}

func TestScheduler_DisabledRegistersNothing(t *testing.T) {
	r := &countingRefresher{}
	s := NewService(config.RefreshConfig{Runnable: false, TimeSpec: "* * * * * *"}, r)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	assert.Empty(t, s.cron.Entries())

	cancel()
	wg.Wait()
	assert.Zero(t, r.calls.Load())
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewService(config.RefreshConfig{Runnable: true, TimeSpec: "invalid"}, &countingRefresher{})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := s.Start(context.Background(), wg)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "catalog.refresh")

	// 실패해도 WaitGroup은 해제되어야 한다.
	wg.Wait()
	assert.False(t, s.running)
}

func TestScheduler_RunsRefreshJob(t *testing.T) {
	r := &countingRefresher{}
	s := NewService(config.RefreshConfig{Runnable: true, TimeSpec: "* * * * * *"}, r)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestScheduler_RunRefresh_ErrorIsLogged(t *testing.T) {
	r := &countingRefresher{err: errors.New("boom")}
	s := NewService(config.RefreshConfig{}, r)
	s.jobTimeout = time.Second

	assert.NotPanics(t, s.runRefresh)
	assert.Equal(t, int32(1), r.calls.Load())
}
