package fetcher

import (
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout 요청 하나에 허용되는 기본 최대 시간
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent 요청에 User-Agent가 없을 때 설정되는 값
	DefaultUserAgent = "catalog-insight/1.0"

	// maxBodyBytes 응답 본문을 메모리로 읽을 때의 상한(10MB)
	maxBodyBytes = 10 << 20
)

// HTTPFetcher net/http 클라이언트로 실제 요청을 전송하는 체인의 말단 Fetcher입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Option HTTPFetcher 생성 옵션
type Option func(*HTTPFetcher)

// WithTimeout 요청 타임아웃을 설정합니다. 0 이하이면 기본값을 유지합니다.
func WithTimeout(timeout time.Duration) Option {
	return func(f *HTTPFetcher) {
		if timeout > 0 {
			f.client.Timeout = timeout
		}
	}
}

// WithUserAgent 기본 User-Agent를 변경합니다.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTransport 테스트 등에서 사용할 RoundTripper를 지정합니다.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *HTTPFetcher) {
		f.client.Transport = rt
	}
}

// NewHTTPFetcher 새로운 HTTPFetcher를 생성합니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Do 요청에 User-Agent가 없으면 기본값을 채운 뒤 전송합니다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", f.userAgent)
	}
	return f.client.Do(req)
}

// drainAndCloseBody 커넥션 재사용을 위해 남은 본문을 비우고 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodyBytes))
	_ = body.Close()
}
