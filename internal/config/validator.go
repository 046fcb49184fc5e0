package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/pkg/cronx"
	"github.com/darkkaiser/catalog-insight/pkg/validation"
)

// telegramBotTokenPattern BotFather가 발급하는 "<봇ID>:<비밀키>" 형식
var telegramBotTokenPattern = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 설정 검증에 사용할 validator 인스턴스를 생성합니다.
// 오류 메시지에 Go 필드명 대신 JSON 키 이름이 나오도록 태그 이름 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return cronx.Validate(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("설정 검증 규칙('%s') 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 검증하고 첫 번째 실패 항목을 사람이 읽을 수 있는 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return apperrors.Wrapf(err, apperrors.Internal, "%s 검증 중 예기치 않은 오류가 발생했습니다", contextName)
	}

	fe := ve[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 항목은 필수입니다", contextName, field)
	case "required_if":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 항목은 해당 기능이 활성화된 경우 필수입니다", contextName, field)
	case "http_url":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 값이 올바른 HTTP(S) URL이 아닙니다 (입력값: %v)", contextName, field, fe.Value())
	case "file":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 파일을 찾을 수 없습니다 (입력값: %v)", contextName, field, fe.Value())
	case "min", "max", "gt":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 값이 허용 범위를 벗어났습니다 (조건: %s=%s, 입력값: %v)", contextName, field, fe.Tag(), fe.Param(), fe.Value())
	case "unique":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 목록에 중복된 %s 값이 존재합니다", contextName, field, fe.Param())
	case "cors_origin":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 CORS Origin 형식이 올바르지 않습니다 (입력값: %v)", contextName, fe.Value())
	case "telegram_bot_token":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 텔레그램 봇 토큰 형식이 올바르지 않습니다", contextName)
	case "cron_spec":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' Cron 표현식이 올바르지 않습니다 (입력값: %v)", contextName, field, fe.Value())
	default:
		return apperrors.Newf(apperrors.InvalidInput, "%s의 '%s' 값이 유효하지 않습니다 (조건: %s)", contextName, field, fe.Tag())
	}
}
