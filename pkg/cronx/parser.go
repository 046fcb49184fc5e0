// Package cronx 애플리케이션 표준 Cron 표현식(초 단위 포함 6필드) 파싱과 검증을 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser [초] [분] [시] [일] [월] [요일] 6필드와 @every 등 Descriptor를 지원하는 파서입니다.
// 5필드 표준 형식은 지원하지 않습니다.
//
//	"0 */10 * * * *" : 매 10분 0초
//	"@every 30s"     : 30초마다
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한지 검사합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패 (spec=%q): %w", spec, err)
	}
	return nil
}
