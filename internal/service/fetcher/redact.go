package fetcher

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/darkkaiser/catalog-insight/pkg/strutil"
)

// sensitiveQueryKeys 로그와 에러 메시지에서 값을 가릴 쿼리 파라미터(소문자)
var sensitiveQueryKeys = map[string]struct{}{
	"token": {}, "access_token": {}, "api_key": {}, "apikey": {}, "key": {}, "secret": {}, "password": {},
}

var sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"}

// redactURL 사용자 정보와 민감한 쿼리 파라미터 값을 가린 URL 문자열을 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	c := *u
	if c.User != nil {
		c.User = url.User(c.User.Username())
	}

	q := c.Query()
	changed := false
	for k, values := range q {
		if _, ok := sensitiveQueryKeys[strings.ToLower(k)]; !ok {
			continue
		}
		for i := range values {
			values[i] = strutil.Mask(values[i])
		}
		changed = true
	}
	if changed {
		c.RawQuery = q.Encode()
	}

	return c.String()
}

func redactRawURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return redactURL(u)
}

func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	c := h.Clone()
	for _, name := range sensitiveHeaders {
		if c.Get(name) != "" {
			c.Set(name, "***")
		}
	}
	return c
}
