package deviceid

import (
	"errors"
	"fmt"
)

// ErrorCode 错误代码
type ErrorCode string

const (
	// ErrCodeUname uname(2) 调用失败
	ErrCodeUname ErrorCode = "UNAME_FAILED"
	// ErrCodeEmptyIdentifier 系统返回了空的硬件标识
	ErrCodeEmptyIdentifier ErrorCode = "EMPTY_IDENTIFIER"
	// ErrCodeUnsupported 当前平台不提供该查询
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED_PLATFORM"
)

var (
	// ErrPlatformQueryFailed is matched (via errors.Is) by every error
	// returned from DeviceID, ModelName and GetInfo.
	ErrPlatformQueryFailed = errors.New("deviceid: platform query failed")

	// ErrUnsupportedPlatform is the cause attached when the host OS has no
	// system-information interface this package knows how to query.
	ErrUnsupportedPlatform = errors.New("deviceid: unsupported platform")
)

// QueryError 描述一次失败的系统查询
type QueryError struct {
	Code  ErrorCode // 错误代码
	Op    string    // 失败的系统调用，例如 "uname"
	Cause error     // 原始错误
}

// Error 实现 error 接口
func (e *QueryError) Error() string {
	msg := fmt.Sprintf("deviceid: %s [%s]", e.Op, e.Code)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Is 任何 QueryError 都匹配 ErrPlatformQueryFailed；两个 QueryError 在代码相同时匹配
func (e *QueryError) Is(target error) bool {
	if target == ErrPlatformQueryFailed {
		return true
	}
	if err, ok := target.(*QueryError); ok {
		return e.Code == err.Code
	}
	return false
}

// Unwrap 解包原始错误
func (e *QueryError) Unwrap() error {
	return e.Cause
}

func newQueryError(code ErrorCode, op string, cause error) *QueryError {
	return &QueryError{Code: code, Op: op, Cause: cause}
}
