package allocator

import (
	"context"
	"time"

	"github.com/jiwei/jiwei/pkg/cpmodel"
	"github.com/jiwei/jiwei/pkg/logger"
)

// Assignment 分配结果中的一条：过站停放的机位
type Assignment struct {
	TurnID   string `json:"turn_id"`
	FlightID string `json:"flight_id"`
	StandID  string `json:"stand_id"`
}

// Statistics 模型与求解统计
type Statistics struct {
	TurnCount        int `json:"turn_count"`
	StandCount       int `json:"stand_count"`
	CandidateCount   int `json:"candidate_count"`
	RuleCount        int `json:"rule_count"`
	BoolVarCount     int `json:"bool_var_count"`
	IntervalVarCount int `json:"interval_var_count"`
	ConstraintCount  int `json:"constraint_count"`
}

// Result 分配结果
// 求解器的判定是数据而非异常：INFEASIBLE 与 UNKNOWN 均为正常返回值，
// 且二者严格区分——"超时未找到"不等于"证明无解"
type Result struct {
	Status      cpmodel.Status `json:"status"`
	Solved      bool           `json:"solved"`
	Assignments []Assignment   `json:"assignments,omitempty"`
	Statistics  *Statistics    `json:"statistics"`
	Duration    time.Duration  `json:"duration"`
	Message     string         `json:"message,omitempty"`
}

// Allocator 停机位分配器
// 无共享状态，输入不可变，多个实例/多次调用可安全并行
type Allocator struct {
	solver cpmodel.Solver
	logger *logger.AllocatorLogger
}

// New 创建分配器
func New(solver cpmodel.Solver) *Allocator {
	return &Allocator{
		solver: solver,
		logger: logger.NewAllocatorLogger(),
	}
}

// Allocate 执行一次完整的分配
//
// 流程：输入校验 → 变量装配 → 主约束/相邻约束装配 → 求解 → 结果解释。
// 配置错误在装配阶段立即返回 error；求解判定通过 Result.Status 表达。
func (a *Allocator) Allocate(ctx context.Context, p *Problem) (*Result, error) {
	start := time.Now()
	a.logger.StartAllocation(len(p.Turns), len(p.Stands), len(p.Rules))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := cpmodel.NewModel()

	vars, err := BuildVariables(m, p)
	if err != nil {
		return nil, err
	}

	AssembleCoreConstraints(m, vars)
	if err := AssembleAdjacencyConstraints(m, vars, p.Rules); err != nil {
		return nil, err
	}

	a.logger.ModelBuilt(len(vars.Candidates), m.NumBools(), m.NumIntervals())

	solution, err := a.solver.Solve(ctx, m)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Status: solution.Status,
		Solved: solution.Status.Solved(),
		Statistics: &Statistics{
			TurnCount:        len(p.Turns),
			StandCount:       len(p.Stands),
			CandidateCount:   len(vars.Candidates),
			RuleCount:        len(p.Rules),
			BoolVarCount:     m.NumBools(),
			IntervalVarCount: m.NumIntervals(),
			ConstraintCount:  m.NumConstraints(),
		},
		Duration: time.Since(start),
	}

	switch solution.Status {
	case cpmodel.StatusOptimal, cpmodel.StatusFeasible:
		result.Assignments = extractAssignments(vars, solution)
	case cpmodel.StatusInfeasible:
		result.Message = "模型不可行：约束组合无解"
	default:
		result.Message = "求解未得出结论（可能超时）"
	}

	a.logger.AllocationComplete(string(result.Status), len(result.Assignments), result.Duration)
	return result, nil
}

// extractAssignments 按过站输入顺序提取每个过站存在变量为真的候选
func extractAssignments(vars *Variables, solution *cpmodel.Solution) []Assignment {
	byTurn := make(map[string]Assignment, len(vars.TurnOrder))
	for _, cand := range vars.Candidates {
		if solution.BoolValue(cand.Present) {
			byTurn[cand.Turn.TurnID] = Assignment{
				TurnID:   cand.Turn.TurnID,
				FlightID: cand.Turn.FlightID,
				StandID:  cand.Stand.StandID,
			}
		}
	}

	assignments := make([]Assignment, 0, len(vars.TurnOrder))
	for _, turnID := range vars.TurnOrder {
		if a, ok := byTurn[turnID]; ok {
			assignments = append(assignments, a)
		}
	}
	return assignments
}
