// Package errors 타입 기반으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 설정 로딩, 서비스 기동, 백엔드 상태 조회에서 발생하는 실패는 모두 AppError로 표현되며
// ErrorType으로 분류됩니다. Wrap 계열 함수로 원인 에러를 보존한 채 문맥을 덧붙일 수 있습니다.
//
//	if err := k.Load(provider, parser); err != nil {
//	    return errors.Wrap(err, errors.InvalidInput, "설정 파일을 읽을 수 없습니다")
//	}
//
//	if errors.Is(err, errors.Unavailable) {
//	    // 백엔드가 일시적으로 응답하지 않음
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류 정보와 호출 스택을 함께 담는 에러입니다.
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

// Format %+v 로 출력하면 스택과 원인 체인을 함께 출력합니다.
// 스택은 체인의 끝(원인이 없거나 원인이 AppError가 아닌 경우)에서만 출력됩니다.
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
					if i := strings.LastIndex(fn, "/"); i != -1 {
						fn = fn[i+1:]
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

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(callerSkip)}
}

// Newf 포맷 문자열로 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(callerSkip)}
}

// Wrap err를 원인으로 하는 새 에러를 생성합니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(callerSkip)}
}

// Wrapf 포맷 문자열을 사용하는 Wrap 입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(callerSkip)}
}

// Is 에러 체인 안에 errType으로 분류된 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As 와 같습니다.
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

// UnderlyingType 체인에서 가장 안쪽에 위치한 AppError의 타입을 반환합니다.
// AppError가 없으면 Unknown 입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
