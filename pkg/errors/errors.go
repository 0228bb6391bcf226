package errors

import (
	"errors"
	"fmt"
)

// 错误码
const (
	CodeSuccess         = 200
	CodeAccepted        = 202 // 已暂存，等待确认
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeGone            = 410
	CodeInternalError   = 500
	CodeValidationError = 503
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetCode 取错误码, 非AppError视为内部错误
func GetCode(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// 预定义错误
var (
	ErrBadRequest      = New(CodeBadRequest, "请求参数错误")
	ErrUnauthorized    = New(CodeUnauthorized, "未授权")
	ErrForbidden       = New(CodeForbidden, "禁止访问")
	ErrNotFound        = New(CodeNotFound, "资源不存在")
	ErrConflict        = New(CodeConflict, "资源冲突")
	ErrInternalError   = New(CodeInternalError, "内部服务器错误")
	ErrValidationError = New(CodeValidationError, "数据验证失败")

	// 具体业务错误
	ErrInvalidParams       = New(CodeBadRequest, "请求参数错误")
	ErrUserNotFound        = New(CodeNotFound, "用户不存在")
	ErrProjectNotFound     = New(CodeNotFound, "项目不存在")
	ErrNoUsers             = New(CodeNotFound, "尚无用户，请先创建第一个协作者")
	ErrInvalidToken        = New(CodeUnauthorized, "无效的Token")
	ErrTokenExpired        = New(CodeUnauthorized, "Token已过期")
	ErrRecordNotFound      = New(CodeNotFound, "记录不存在")
	ErrTaskNotFound        = New(CodeNotFound, "任务不存在")
	ErrTeamNotFound        = New(CodeNotFound, "团队不存在")
	ErrAssigneeNotFound    = New(CodeBadRequest, "负责人不存在")
	ErrConfirmationMissing = New(CodeNotFound, "确认请求不存在")
	ErrConfirmationExpired = New(CodeGone, "确认请求已过期")
)
