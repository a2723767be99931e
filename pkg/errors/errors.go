// Package errors 提供统一的错误处理框架
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code 错误码
type Code string

const (
	// 通用错误码
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeTimeout      Code = "TIMEOUT"

	// 模型装配相关（调用方配置错误）
	CodeValidationFail    Code = "VALIDATION_FAILED"
	CodeInvalidTimeRange  Code = "INVALID_TIME_RANGE"
	CodeInvalidTimeWindow Code = "INVALID_TIME_WINDOW"
	CodeMatrixMismatch    Code = "MATRIX_DIMENSION_MISMATCH"
	CodeUnknownStand      Code = "UNKNOWN_STAND"

	// 分配相关
	CodeNoFeasibleStand    Code = "NO_FEASIBLE_STAND"
	CodeNoFeasibleSolution Code = "NO_FEASIBLE_SOLUTION"

	// 数据相关
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code       Code                   `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
	Cause      error                  `json:"-"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField 添加字段
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New 创建新错误
func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// codeToHTTPStatus 错误码转HTTP状态码
func codeToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeValidationFail, CodeInvalidTimeRange,
		CodeInvalidTimeWindow, CodeMatrixMismatch, CodeUnknownStand:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeNoFeasibleStand, CodeNoFeasibleSolution:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Is 检查错误是否为特定类型
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode 获取错误码
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetHTTPStatus 获取HTTP状态码
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// 预定义错误
var (
	ErrNotFound     = New(CodeNotFound, "资源不存在")
	ErrInvalidInput = New(CodeInvalidInput, "输入参数无效")
	ErrInternal     = New(CodeInternal, "内部错误")
	ErrTimeout      = New(CodeTimeout, "操作超时")
)

// InvalidInput 创建输入无效错误
func InvalidInput(field, reason string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("字段 '%s' 无效: %s", field, reason))
}

// NotFound 创建资源不存在错误
func NotFound(resource, id string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s '%s' 不存在", resource, id))
}

// UnknownStand 创建未知停机位错误
func UnknownStand(ruleID, standID string) *AppError {
	return New(CodeUnknownStand,
		fmt.Sprintf("规则 '%s' 引用了不存在的停机位 '%s'", ruleID, standID))
}

// InvalidTimeWindow 创建影子窗口反转错误
func InvalidTimeWindow(ruleID, turnID string, start, end int) *AppError {
	return New(CodeInvalidTimeWindow,
		fmt.Sprintf("规则 '%s' 对过站 '%s' 推导出反转的影子窗口 [%d, %d)", ruleID, turnID, start, end)).
		WithField("rule_id", ruleID).
		WithField("turn_id", turnID)
}

// NoFeasibleStand 创建结构性不可行错误（某过站没有任何可行停机位）
func NoFeasibleStand(turnID string) *AppError {
	return New(CodeNoFeasibleStand,
		fmt.Sprintf("过站 '%s' 没有任何可行停机位", turnID)).
		WithField("turn_id", turnID)
}
