package scheduler

import (
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// newErrInvalidCronSpec Cron 표현식이 올바르지 않아 작업 등록에 실패했을 때의 에러를 생성합니다.
func newErrInvalidCronSpec(jobName, timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패: 잘못된 Cron 표현식입니다 (Job=%s, TimeSpec='%s')", jobName, timeSpec)
}
