package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/darkkaiser/catalog-insight/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때(Chunked 전송 등) bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 요청(IP, 메서드, URI, User-Agent), 응답(상태 코드, 크기, Request ID), 처리 시간을 기록하며
// 민감한 쿼리 파라미터 값은 마스킹합니다. 패닉이 발생해도 로그는 남습니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
					"method":        req.Method,
					"path":          path,
					"uri":           maskSensitiveQueryParams(req.RequestURI),
					"host":          req.Host,
					"protocol":      req.Proto,
					"remote_ip":     c.RealIP(),
					"user_agent":    req.UserAgent(),
					"referer":       req.Referer(),
					"status":        res.Status,
					"bytes_in":      bytesIn,
					"bytes_out":     strconv.FormatInt(res.Size, 10),
					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),
					"request_id":    res.Header().Get(echo.HeaderXRequestID),
				}).Info("HTTP 요청")
			}()

			// 에러를 여기서 처리해야 로그에 실제 응답 상태 코드가 남는다.
			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하면 원본을 반환합니다.
//
//	입력: "/api/v1/products?token=secret123&sort=price"
//	출력: "/api/v1/products?sort=price&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
