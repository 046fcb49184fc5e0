package fetcher

import (
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// maxBodySnippet HTTPStatusError에 담기는 응답 본문의 최대 길이
const maxBodySnippet = 4096

// HTTPStatusError 허용되지 않은 HTTP 상태 코드 응답을 나타냅니다.
// Cause에는 상태 코드로 분류한 AppError가 들어갑니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	Header      http.Header
	BodySnippet string
	Cause       error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// CheckResponseStatus 응답 상태 코드가 허용 목록에 있는지 검사합니다.
// allowed가 비어있으면 모든 2xx 응답을 허용합니다. 본문은 닫지 않습니다.
func CheckResponseStatus(resp *http.Response, allowed ...int) error {
	if isAllowedStatus(resp.StatusCode, allowed) {
		return nil
	}

	var snippet string
	if resp.Body != nil {
		if b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet)); len(b) > 0 {
			snippet = string(b)
		}
	}

	var reqURL string
	if resp.Request != nil {
		reqURL = redactURL(resp.Request.URL)
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         reqURL,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
		Cause:       apperrors.New(statusErrorType(resp.StatusCode), http.StatusText(resp.StatusCode)),
	}
}

func isAllowedStatus(code int, allowed []int) bool {
	if len(allowed) == 0 {
		return code >= 200 && code < 300
	}
	for _, c := range allowed {
		if c == code {
			return true
		}
	}
	return false
}

// statusErrorType HTTP 상태 코드를 에러 유형으로 분류합니다.
func statusErrorType(code int) apperrors.ErrorType {
	switch {
	case code == http.StatusNotFound:
		return apperrors.NotFound
	case code == http.StatusConflict:
		return apperrors.Conflict
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return apperrors.Timeout
	case code == http.StatusTooManyRequests, code >= 500:
		return apperrors.Unavailable
	case code >= 400:
		return apperrors.InvalidInput
	default:
		return apperrors.ExecutionFailed
	}
}

// StatusCodeFetcher 허용되지 않은 상태 코드의 응답을 HTTPStatusError로 바꾸는 Fetcher입니다.
// 에러를 반환할 때는 응답 본문을 직접 정리하므로 호출자가 닫을 필요가 없습니다.
type StatusCodeFetcher struct {
	delegate Fetcher
	allowed  []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher allowed가 비어있으면 2xx 응답만 허용합니다.
func NewStatusCodeFetcher(delegate Fetcher, allowed ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate, allowed: allowed}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowed...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}
