package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

const (
	maxAllowedRetries = 10

	defaultRetryDelay    = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryFetcher 일시적인 실패(네트워크 오류, 408/429/5xx)를 지수 백오프와 Jitter로 재시도하는 Fetcher입니다.
//
// 재시도는 멱등(Idempotent) 메서드에만 적용됩니다. POST 요청은 서버에 이미 반영되었을 수 있으므로
// 한 번만 전송합니다. 서버가 Retry-After 헤더를 보내면 그 값을 우선합니다.
type RetryFetcher struct {
	delegate      Fetcher
	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher maxRetries는 0~10으로 보정되고, 0 이하의 지연 시간은 기본값으로 대체됩니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	maxRetries = max(0, min(maxRetries, maxAllowedRetries))

	if minRetryDelay <= 0 {
		minRetryDelay = defaultRetryDelay
	}
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = minRetryDelay
	}

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	maxRetries := f.maxRetries
	if !isIdempotentMethod(req.Method) || (req.Body != nil && req.GetBody == nil) {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoff(attempt, lastErr)

			applog.WithComponentAndFields(component, applog.Fields{
				"url":         redactURL(req.URL),
				"attempt":     attempt,
				"max_retries": maxRetries,
				"delay":       delay.String(),
				"error":       lastErr.Error(),
			}).Warn("재시도 대기 중: 일시적 오류로 인해 요청 재시도를 준비합니다")

			if err := sleep(req.Context(), delay); err != nil {
				return nil, err
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, apperrors.Wrap(err, apperrors.Internal, "재시도를 위한 요청 본문 재생성에 실패했습니다")
				}
				req = req.Clone(req.Context())
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil {
			if !isRetriableStatus(resp.StatusCode) || attempt == maxRetries {
				return resp, nil
			}
			lastErr = CheckResponseStatus(resp)
			drainAndCloseBody(resp.Body)
			continue
		}

		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		if req.Context().Err() != nil || !isRetriable(err) {
			return nil, err
		}
		lastErr = err
	}

	if maxRetries == 0 {
		return nil, lastErr
	}
	return nil, apperrors.Wrapf(lastErr, apperrors.Unavailable, "최대 재시도 횟수(%d)를 초과했습니다", maxRetries)
}

// backoff attempt번째 재시도 전의 대기 시간입니다. Full Jitter를 적용합니다.
func (f *RetryFetcher) backoff(attempt int, lastErr error) time.Duration {
	var statusErr *HTTPStatusError
	if errors.As(lastErr, &statusErr) && statusErr.Header != nil {
		if d, ok := parseRetryAfter(statusErr.Header.Get("Retry-After")); ok {
			return min(d, f.maxRetryDelay)
		}
	}

	delay := f.minRetryDelay << (attempt - 1)
	if delay <= 0 || delay > f.maxRetryDelay {
		delay = f.maxRetryDelay
	}
	delay = time.Duration(rand.Int64N(int64(delay) + 1))

	return max(delay, f.minRetryDelay)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isRetriableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return code >= 500
}

// isRetriable 에러가 일시적인 실패인지 판단합니다.
func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var hostnameErr x509.HostnameError
	var authorityErr x509.UnknownAuthorityError
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &hostnameErr) || errors.As(err, &authorityErr) || errors.As(err, &invalidErr) {
		return false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return isRetriableStatus(statusErr.StatusCode)
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput, apperrors.NotFound, apperrors.ExecutionFailed, apperrors.ParsingFailed:
		return false
	}

	return true
}

func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// parseRetryAfter 초 단위 정수 또는 HTTP 날짜 형식의 Retry-After 값을 해석합니다.
func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}
	if date, err := http.ParseTime(value); err == nil {
		return max(time.Until(date), 0), true
	}
	return 0, false
}
