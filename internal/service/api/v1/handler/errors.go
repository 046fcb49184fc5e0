package handler

import (
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니어서 파싱에 실패했을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 데이터의 유효성 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidLimit limit 쿼리 파라미터가 허용 범위를 벗어났을 때의 에러를 생성합니다.
func NewErrInvalidLimit() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidTop)
}
