// Package errors ErrorType 기반으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 모든 에러는 생성 지점의 스택을 기록하며, Wrap으로 컨텍스트를 누적할 수 있습니다.
// API 계층은 UnderlyingType으로 근본 분류를 꺼내 HTTP 상태 코드를 결정합니다.
//
//	if err := p.Validate(); err != nil {
//	    return errors.Wrap(err, errors.InvalidInput, "상품 데이터가 유효하지 않습니다")
//	}
//
//	if errors.Is(err, errors.Conflict) {
//	    // 쿨다운 중
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType), 메시지, 원인 에러, 생성 위치를 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func (e *AppError) Type() ErrorType { return e.errType }

func (e *AppError) Message() string { return e.message }

func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Format %+v 포맷에서는 에러 체인과 스택 트레이스를 함께 출력합니다.
// 스택은 체인의 끝(원인이 없거나 원인이 AppError가 아닌 지점)에서만 출력하여 중복을 피합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
				io.WriteString(s, "\nStack trace:")
				for _, f := range e.stack {
					fn := f.Function
					if idx := strings.LastIndex(fn, "/"); idx != -1 {
						fn = fn[idx+1:]
					}
					fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
				}
			}

			if e.cause != nil {
				io.WriteString(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(callerSkip)}
}

// Newf 포맷 문자열로 새 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(callerSkip)}
}

// Wrap err를 원인으로 하는 에러를 생성합니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(callerSkip)}
}

// Wrapf 포맷 문자열을 사용하는 Wrap입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(callerSkip)}
}

// Is 에러 체인에 errType으로 분류된 AppError가 하나라도 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 분류를 반환합니다.
// AppError가 없으면 Unknown입니다.
//
//	err := Wrap(New(Conflict, "쿨다운 중"), Internal, "알림 발송 실패")
//	UnderlyingType(err) // Conflict
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
