package fetcher

import (
	"time"
)

// Config Fetcher 체인 구성 값
type Config struct {
	Timeout       time.Duration
	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration
}

// New 재시도와 상태 코드 검사를 포함한 표준 Fetcher 체인을 생성합니다.
func New(cfg Config, opts ...Option) Fetcher {
	opts = append([]Option{WithTimeout(cfg.Timeout)}, opts...)

	var f Fetcher = NewHTTPFetcher(opts...)
	f = NewStatusCodeFetcher(f)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)

	return f
}
