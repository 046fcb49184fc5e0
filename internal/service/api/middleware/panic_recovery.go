package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 로깅하는 미들웨어를 반환합니다.
// 복구된 panic은 Internal 에러로 변환되어 전역 에러 핸들러(500)로 전달됩니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// 연결 중단 신호는 net/http 서버가 처리하도록 그대로 전파한다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				recovered := NewErrPanicRecovered(r)

				fields := applog.Fields{
					"error": recovered,
					"stack": string(stack[:length]),
					"path":  c.Request().URL.Path,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(recovered)
				err = nil
			}()

			return next(c)
		}
	}
}
