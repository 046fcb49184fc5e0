package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/httputil"
)

var (
	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 요청의 Content-Type을 서버가 지원하지 않을 때 반환할 415 에러입니다.
	ErrUnsupportedMediaType = httputil.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "핸들러 실행 중 패닉이 발생했습니다")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
