// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import "strings"

// SplitAndTrim sep으로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목을 제외합니다.
// 남는 항목이 없으면 nil을 반환합니다.
//
//	SplitAndTrim("a, , b,c", ",") // ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// Mask 토큰, 키 등 민감한 값을 로그에 남길 수 있도록 가립니다.
func Mask(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 4:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}

// ContainsFold s가 substr을 대소문자 구분 없이 포함하는지 검사합니다.
// 빈 substr은 항상 true입니다.
//
// 원본 문자열을 복사하지 않고 문자 경계마다 strings.EqualFold로 비교합니다.
// 대소문자 변환 시 바이트 길이가 달라지는 문자(터키어 İ 등)는 정확하지 않을 수 있습니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	if len(s) < len(substr) {
		return false
	}

	for i := range s {
		if len(s)-i < len(substr) {
			return false
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}

	return false
}
