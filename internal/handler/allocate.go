package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jiwei/jiwei/internal/metrics"
	"github.com/jiwei/jiwei/internal/repository"
	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/cpmodel"
	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/model"
	"github.com/jiwei/jiwei/pkg/validator"
)

// AllocateHandler 机位分配处理器
type AllocateHandler struct {
	solver         cpmodel.Solver
	store          *repository.ProblemStore // 可选，仅在启用数据库时注入
	defaultTimeout time.Duration
}

// NewAllocateHandler 创建机位分配处理器
func NewAllocateHandler(solver cpmodel.Solver, store *repository.ProblemStore, defaultTimeout time.Duration) *AllocateHandler {
	return &AllocateHandler{
		solver:         solver,
		store:          store,
		defaultTimeout: defaultTimeout,
	}
}

// SolveOptions 求解选项
type SolveOptions struct {
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// SolveRequest 分配求解请求
// feasibility 为行优先的布尔矩阵（行=过站，列=停机位），省略时默认全部可行
type SolveRequest struct {
	Turns       []model.Turn          `json:"turns"`
	Stands      []model.Stand         `json:"stands"`
	Feasibility [][]bool              `json:"feasibility,omitempty"`
	Rules       []model.AdjacencyRule `json:"rules,omitempty"`
	Options     *SolveOptions         `json:"options,omitempty"`
}

// SolveResponse 分配求解响应
type SolveResponse struct {
	Success     bool                   `json:"success"`
	Status      string                 `json:"status"`
	Message     string                 `json:"message,omitempty"`
	Assignments []allocator.Assignment `json:"assignments,omitempty"`
	Statistics  *allocator.Statistics  `json:"statistics,omitempty"`
	Duration    string                 `json:"duration"`
}

// Solve 对请求中的问题执行一次分配求解
func (h *AllocateHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	problem, err := buildProblem(req.Turns, req.Stands, req.Feasibility, req.Rules)
	if err != nil {
		respondError(w, err)
		return
	}

	h.solve(r.Context(), w, problem, req.Options)
}

// SolveStored 装载数据库中的问题并执行分配求解
func (h *AllocateHandler) SolveStored(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}
	if h.store == nil {
		respondError(w, errors.New(errors.CodeDatabaseError, "数据库未启用"))
		return
	}

	problem, err := h.store.LoadProblem(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "装载问题失败"))
		return
	}

	var opts *SolveOptions
	if r.Body != nil {
		var req struct {
			Options *SolveOptions `json:"options,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			opts = req.Options
		}
	}

	h.solve(r.Context(), w, problem, opts)
}

// solve 执行求解并输出响应
func (h *AllocateHandler) solve(ctx context.Context, w http.ResponseWriter, problem *allocator.Problem, opts *SolveOptions) {
	timeout := h.defaultTimeout
	if opts != nil && opts.TimeoutSeconds > 0 {
		timeout = time.Duration(opts.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := allocator.New(h.solver).Allocate(ctx, problem)
	if err != nil {
		respondError(w, err)
		return
	}

	metrics.RecordAllocation(string(result.Status), result.Duration,
		result.Statistics.CandidateCount, result.Statistics.ConstraintCount)

	respondJSON(w, http.StatusOK, SolveResponse{
		Success:     result.Solved,
		Status:      string(result.Status),
		Message:     result.Message,
		Assignments: result.Assignments,
		Statistics:  result.Statistics,
		Duration:    result.Duration.String(),
	})
}

// ValidateRequest 方案校验请求
type ValidateRequest struct {
	Turns       []model.Turn           `json:"turns"`
	Stands      []model.Stand          `json:"stands"`
	Feasibility [][]bool               `json:"feasibility,omitempty"`
	Rules       []model.AdjacencyRule  `json:"rules,omitempty"`
	Assignments []allocator.Assignment `json:"assignments"`
}

// ValidateResponse 方案校验响应
type ValidateResponse struct {
	Success    bool                  `json:"success"`
	Valid      bool                  `json:"valid"`
	Violations []validator.Violation `json:"violations,omitempty"`
}

// Validate 对照输入复查一份分配方案
func (h *AllocateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	problem, err := buildProblem(req.Turns, req.Stands, req.Feasibility, req.Rules)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := problem.Validate(); err != nil {
		respondError(w, err)
		return
	}

	violations := validator.NewPlanVerifier().Verify(problem, req.Assignments)
	respondJSON(w, http.StatusOK, ValidateResponse{
		Success:    true,
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

// buildProblem 从请求字段组装分配问题
func buildProblem(turns []model.Turn, stands []model.Stand, feasibility [][]bool, rules []model.AdjacencyRule) (*allocator.Problem, error) {
	var matrix *model.FeasibilityMatrix
	if len(feasibility) == 0 {
		matrix = model.NewFeasibilityMatrix(len(turns), len(stands))
	} else {
		var err error
		matrix, err = model.FeasibilityFromRows(feasibility)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeMatrixMismatch, "可行性矩阵格式错误")
		}
	}

	return &allocator.Problem{
		Turns:       turns,
		Stands:      stands,
		Feasibility: matrix,
		Rules:       rules,
	}, nil
}
