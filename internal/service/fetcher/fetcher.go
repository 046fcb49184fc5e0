// Package fetcher 외부 HTTP 서비스(카탈로그 API, 알림 Webhook) 호출을 위한 Fetcher 체인을 제공합니다.
//
// 각 Fetcher는 다른 Fetcher를 감싸는 데코레이터이며, 일반적인 조합은 다음과 같습니다.
//
//	RetryFetcher → StatusCodeFetcher → HTTPFetcher
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"golang.org/x/net/html/charset"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 HTTP GET 요청을 전송합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Internal, "HTTP 요청 생성에 실패했습니다 (URL: %s)", url)
	}
	return f.Do(req)
}

// FetchBody GET 요청의 응답 본문을 UTF-8로 변환하여 모두 읽어옵니다.
// Content-Type 헤더의 charset이 UTF-8이 아니면(예: EUC-KR) 디코딩합니다.
func FetchBody(ctx context.Context, f Fetcher, url string) ([]byte, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		return nil, wrapTransportError(err, url)
	}
	defer resp.Body.Close()

	if err := CheckResponseStatus(resp); err != nil {
		return nil, err
	}

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "응답(%s)의 인코딩 변환에 실패했습니다", url)
	}

	body, err := io.ReadAll(io.LimitReader(utf8Reader, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "응답(%s) 본문을 읽는 중 오류가 발생했습니다", url)
	}

	return body, nil
}

// FetchJSON GET 요청을 수행하고 응답 본문(JSON)을 v로 디코딩합니다.
func FetchJSON(ctx context.Context, f Fetcher, url string, v any) error {
	body, err := FetchBody(ctx, f, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.Wrapf(err, apperrors.ParsingFailed, "응답(%s) 데이터의 JSON 변환에 실패했습니다", url)
	}

	return nil
}

// PostJSON payload를 JSON으로 직렬화하여 POST합니다. 2xx 응답이면 성공입니다.
// header는 요청 헤더에 그대로 설정됩니다.
func PostJSON(ctx context.Context, f Fetcher, url string, header map[string]string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "요청 데이터의 JSON 변환에 실패했습니다")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return apperrors.Wrapf(err, apperrors.Internal, "HTTP 요청 생성에 실패했습니다 (URL: %s)", url)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}

	resp, err := f.Do(req)
	if err != nil {
		return wrapTransportError(err, url)
	}
	defer drainAndCloseBody(resp.Body)

	return CheckResponseStatus(resp)
}

// wrapTransportError 이미 분류된 에러는 그대로 두고, 분류되지 않은 네트워크 에러만 감쌉니다.
func wrapTransportError(err error, url string) error {
	if apperrors.UnderlyingType(err) != apperrors.Unknown {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrapf(err, apperrors.Timeout, "HTTP 요청(%s) 시간이 초과되었습니다", redactRawURL(url))
	}
	return apperrors.Wrapf(err, apperrors.Unavailable, "HTTP 요청(%s) 전송 중 에러가 발생했습니다", redactRawURL(url))
}
