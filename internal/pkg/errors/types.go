package errors

import "strconv"

// ErrorType 에러의 성격을 분류합니다.
// HTTP 응답 코드와 로그 레벨은 이 값을 기준으로 결정됩니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류. 버그로 간주합니다.
	Internal

	// System 디스크, 네트워크 등 인프라 수준의 장애
	System

	// InvalidInput 입력값 검증 실패 (음수 가격, 빈 상품 ID 등)
	InvalidInput

	// Conflict 현재 상태와 충돌하는 요청 (쿨다운 중인 상품의 재발송 등)
	Conflict

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 외부 호출이나 작업 실행의 실패
	ExecutionFailed

	// ParsingFailed 응답 본문 디코딩, 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없는 상태 (종료 중인 서비스 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
