package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로깅 리소스(hook, 로그 파일)를 한 번에 해제합니다.
// 여러 번 호출해도 안전하며, 두 번째 호출부터는 아무 일도 하지 않습니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 파일을 닫기 전에 hook부터 막아야 닫힌 파일에 쓰는 일이 없다.
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
