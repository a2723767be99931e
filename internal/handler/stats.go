package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jiwei/jiwei/internal/rules"
	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/model"
	"github.com/jiwei/jiwei/pkg/stats"
)

// StatsHandler 统计分析处理器
type StatsHandler struct{}

// NewStatsHandler 创建统计分析处理器
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// UtilizationRequest 利用率计算请求
type UtilizationRequest struct {
	Turns       []model.Turn           `json:"turns"`
	Stands      []model.Stand          `json:"stands"`
	Assignments []allocator.Assignment `json:"assignments"`
}

// UtilizationResponse 利用率计算响应
type UtilizationResponse struct {
	Success     bool                      `json:"success"`
	Utilization *stats.UtilizationMetrics `json:"utilization"`
}

// Utilization 计算一份分配方案的机位利用率
func (h *StatsHandler) Utilization(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req UtilizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	problem, err := buildProblem(req.Turns, req.Stands, nil, nil)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, UtilizationResponse{
		Success:     true,
		Utilization: stats.CalculateUtilization(problem, req.Assignments),
	})
}

// TemplatesResponse 规则模板列表响应
type TemplatesResponse struct {
	Success   bool             `json:"success"`
	Templates []rules.Template `json:"templates"`
}

// RuleTemplates 返回预置的相邻规则模板库
func RuleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}
	respondJSON(w, http.StatusOK, TemplatesResponse{
		Success:   true,
		Templates: rules.GetLibrary(),
	})
}
