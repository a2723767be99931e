// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/logger"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Success bool             `json:"success"`
	Error   *errors.AppError `json:"error"`
}

// respondJSON 输出JSON响应
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("编码响应失败")
	}
}

// respondError 输出错误响应
func respondError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Wrap(err, errors.CodeInternal, "内部错误")
	}

	logger.Warn().
		Str("code", string(appErr.Code)).
		Str("message", appErr.Message).
		Msg("请求处理失败")

	respondJSON(w, appErr.HTTPStatus, ErrorResponse{Success: false, Error: appErr})
}
