package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 이벤트를 여러 Writer로 분배합니다.
//
//   - console : 모든 레벨
//   - critical: ERROR / FATAL / PANIC
//   - verbose : DEBUG / TRACE (main에는 기록하지 않음)
//   - main    : INFO / WARN / ERROR / FATAL / PANIC
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 포맷팅은 한 번만 수행하고, 결과를 레벨별 Writer에 기록합니다.
// 하나의 Writer가 실패해도 나머지 Writer에는 계속 기록하며, 최초의 에러를 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	record := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 쓰기 실패: %v\n", channel, err)
		}
	}

	// 콘솔 출력 실패는 로깅 시스템 전체의 가용성에 영향을 주지 않도록 에러로 취급하지 않는다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level <= ErrorLevel {
		record(h.criticalWriter, "Critical")
	}

	if entry.Level >= DebugLevel {
		record(h.verboseWriter, "Verbose")
		return firstErr
	}

	record(h.mainWriter, "Main")

	return firstErr
}

// Close 이후의 모든 Fire 호출을 무시하도록 hook을 닫습니다.
// 진행 중인 Fire가 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
