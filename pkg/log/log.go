// Package log 애플리케이션 전역에서 사용하는 구조화 로깅(logrus) 래퍼입니다.
//
// 모든 로그는 component 필드를 포함해야 하며, WithComponent / WithComponentAndFields 헬퍼를 통해 기록합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus Logger를 반환합니다.
// Echo, Cron 등 외부 라이브러리의 로거 어댑터에 주입할 때 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithComponent component 필드가 설정된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 로그 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// WithFields logrus.WithFields의 얇은 래퍼입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetDebugMode Debug 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//   - Debug 모드: Trace 레벨
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}
