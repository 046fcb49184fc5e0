package middleware

import (
	"mime"
	"strings"

	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청의 Content-Type이 expected인지 검증하는 미들웨어를 반환합니다.
// 본문이 없는 요청은 검증하지 않으며, charset 같은 MIME 파라미터는 무시합니다.
func ValidateContentType(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !strings.EqualFold(mediaType, expected) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expected,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedContentType)

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}
