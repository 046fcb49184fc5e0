// Package config 애플리케이션 설정을 로드하고 검증합니다.
//
// 설정은 기본값 → JSON 설정 파일 → 환경 변수 순서로 덮어씌워지며,
// 환경 변수는 CATALOG_ 접두사와 이중 언더스코어(__)로 계층을 표현합니다.
//
//	CATALOG_HTTP_RETRY__MAX_RETRIES=5            → http_retry.max_retries
//	CATALOG_ANALYTICS_API__CORS__ALLOW_ORIGINS="https://a.com, https://b.com"
package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/pkg/strutil"
)

const (
	// AppName 로그 파일명 등에 사용되는 애플리케이션 식별자
	AppName = "catalog-insight"

	// DefaultFilename 기본 설정 파일 경로
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사
	EnvPrefix = "CATALOG_"
)

// listEnvKeys 쉼표로 구분된 환경 변수 값을 목록으로 해석할 설정 키
var listEnvKeys = map[string]struct{}{
	"analytics_api.cors.allow_origins": {},
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일과 환경 변수로 AppConfig를 생성하고 검증합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(NewDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		}
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
	}

	// 3. 환경 변수
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환. 구조체에 없는 키가 있으면 오타로 보고 실패한다.
	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &cfg, nil
}

// NormalizeEnvKey 환경 변수 이름을 설정 키 경로로 변환합니다.
//
//	CATALOG_ALERT__WEBHOOK__URL → alert.webhook.url
func NormalizeEnvKey(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	return strings.ReplaceAll(key, "__", ".")
}

func envKeyValue(key, value string) (string, any) {
	k := NormalizeEnvKey(key)
	if _, ok := listEnvKeys[k]; ok {
		return k, strutil.SplitAndTrim(value, ",")
	}
	return k, value
}
