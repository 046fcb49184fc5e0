package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/model/response"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 핸들러가 그대로 돌려준 AppError는 가장 바깥쪽 에러 타입으로 상태 코드를 결정합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		// 404 에러는 사용자 친화적인 한국어 메시지로 통일
		if he.Code == http.StatusNotFound {
			if _, ok := he.Message.(response.ErrorResponse); !ok {
				message = constants.ErrMsgNotFound
			}
		}
		return he.Code, message
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusCode(appErr.Type())
		if code == http.StatusInternalServerError {
			return code, constants.ErrMsgInternalServer
		}
		return code, clientMessage(code, appErr)
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

// StatusCode 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.ExecutionFailed:
		return http.StatusBadGateway
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage 4xx는 에러 메시지를 그대로 전달하고, 5xx는 내부 원인을 숨긴 고정 메시지를 사용합니다.
func clientMessage(code int, appErr *apperrors.AppError) string {
	switch code {
	case http.StatusBadGateway:
		return constants.ErrMsgBadGateway
	case http.StatusServiceUnavailable:
		return constants.ErrMsgServiceUnavailable
	case http.StatusGatewayTimeout:
		return constants.ErrMsgGatewayTimeout
	default:
		return appErr.Message()
	}
}
