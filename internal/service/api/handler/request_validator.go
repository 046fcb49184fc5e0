// Package handler API 버전에 관계없이 공통으로 사용하는 요청 검증 도구를 제공합니다.
package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 초기화된 validator 인스턴스를 반환합니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지의 필드명으로 korean 태그 값을 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return validate
}

// ValidateRequest 구조체의 validate 태그를 기반으로 검증을 수행합니다.
func ValidateRequest(req any) error {
	return getValidator().Struct(req)
}

// FormatValidationError validator 에러를 한글 메시지로 변환합니다.
// 여러 검증 에러가 있으면 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldErr := validationErrors[0]
	fieldName := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", fieldName)
	case "max":
		return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, fieldErr.Param())
	case "printascii":
		return fmt.Sprintf("%s에는 출력 가능한 ASCII 문자만 사용할 수 있습니다", fieldName)
	default:
		return fmt.Sprintf("%s 검증 실패: %s", fieldName, fieldErr.Tag())
	}
}
