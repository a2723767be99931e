// Package solver 提供约束模型的默认求解后端
package solver

import (
	"context"
	"time"

	"github.com/jiwei/jiwei/pkg/cpmodel"
	"github.com/jiwei/jiwei/pkg/logger"
)

// ctxCheckInterval 每搜索多少节点检查一次上下文取消
const ctxCheckInterval = 1024

// BacktrackSolver 时序回溯求解器
//
// 按声明顺序对布尔变量做深度优先枚举，在每次赋值后立即检查
// 恰好一个约束与不重叠约束的局部可满足性并剪枝。搜索是完整的：
// 穷尽后仍无解即证明 INFEASIBLE；模型无目标函数，找到的第一个
// 可行解即为 OPTIMAL。上下文取消或超时返回 UNKNOWN。
type BacktrackSolver struct {
	logger *logger.AllocatorLogger
}

// NewBacktrackSolver 创建回溯求解器
func NewBacktrackSolver() *BacktrackSolver {
	return &BacktrackSolver{
		logger: logger.NewAllocatorLogger(),
	}
}

// Name 返回求解器名称
func (s *BacktrackSolver) Name() string {
	return "BacktrackSolver"
}

// search 单次求解的搜索状态
type search struct {
	model    *cpmodel.Model
	values   []bool
	assigned []bool

	// 预计算索引：布尔变量下标 → 所属恰好一个约束组
	eoGroupsByVar [][]int
	eoGroups      [][]*cpmodel.BoolVar
	// 布尔变量下标 → 它门控的区间及其所在不重叠组
	gatedByVar [][]gatedInterval

	nodes     int
	cancelled bool
	ctx       context.Context
}

// gatedInterval 由某布尔变量门控的区间及其不重叠组
type gatedInterval struct {
	interval *cpmodel.IntervalVar
	group    []*cpmodel.IntervalVar
}

// Solve 执行回溯搜索
func (s *BacktrackSolver) Solve(ctx context.Context, m *cpmodel.Model) (*cpmodel.Solution, error) {
	start := time.Now()
	n := m.NumBools()

	st := &search{
		model:         m,
		values:        make([]bool, n),
		assigned:      make([]bool, n),
		eoGroupsByVar: make([][]int, n),
		eoGroups:      m.ExactlyOneGroups(),
		gatedByVar:    make([][]gatedInterval, n),
		ctx:           ctx,
	}

	for gi, group := range st.eoGroups {
		for _, b := range group {
			st.eoGroupsByVar[b.Index()] = append(st.eoGroupsByVar[b.Index()], gi)
		}
	}
	for _, group := range m.NoOverlapGroups() {
		for _, iv := range group {
			idx := iv.Presence().Index()
			st.gatedByVar[idx] = append(st.gatedByVar[idx], gatedInterval{interval: iv, group: group})
		}
	}

	found := st.dfs(0)

	status := cpmodel.StatusInfeasible
	var values []bool
	switch {
	case st.cancelled:
		status = cpmodel.StatusUnknown
	case found:
		status = cpmodel.StatusOptimal
		values = st.values
	}

	logger.Debug().
		Str("solver", s.Name()).
		Str("status", string(status)).
		Int("bool_vars", n).
		Int("nodes", st.nodes).
		Dur("duration", time.Since(start)).
		Msg("求解结束")

	return cpmodel.NewSolution(status, values), nil
}

// dfs 从第 i 个布尔变量开始枚举
func (st *search) dfs(i int) bool {
	st.nodes++
	if st.nodes%ctxCheckInterval == 0 && st.ctx.Err() != nil {
		st.cancelled = true
		return false
	}

	if i == len(st.values) {
		return st.allSatisfied()
	}

	// 先尝试真分支：恰好一个约束组内至多一个为真，真分支剪枝更强
	for _, v := range []bool{true, false} {
		st.values[i] = v
		st.assigned[i] = true
		if st.consistent(i) && st.dfs(i+1) {
			return true
		}
		st.assigned[i] = false
		if st.cancelled {
			return false
		}
	}
	return false
}

// consistent 检查刚对下标 i 赋值后的局部一致性
func (st *search) consistent(i int) bool {
	// 恰好一个约束：真值不超过一个，且未赋值变量耗尽前不能全为假
	for _, gi := range st.eoGroupsByVar[i] {
		trueCount := 0
		unassigned := 0
		for _, b := range st.eoGroups[gi] {
			idx := b.Index()
			if !st.assigned[idx] {
				unassigned++
				continue
			}
			if st.values[idx] {
				trueCount++
			}
		}
		if trueCount > 1 {
			return false
		}
		if trueCount == 0 && unassigned == 0 {
			return false
		}
	}

	// 不重叠约束：新存在的区间不得与同组已存在的区间相交
	if st.values[i] {
		for _, g := range st.gatedByVar[i] {
			for _, other := range g.group {
				if other == g.interval {
					continue
				}
				oIdx := other.Presence().Index()
				if st.assigned[oIdx] && st.values[oIdx] && g.interval.OverlapsWith(other) {
					return false
				}
			}
		}
	}

	return true
}

// allSatisfied 完整赋值下的终检
// 剪枝已保证局部一致，这里仅兜底确认每个恰好一个约束组确有一个真值
func (st *search) allSatisfied() bool {
	for _, group := range st.eoGroups {
		trueCount := 0
		for _, b := range group {
			if st.values[b.Index()] {
				trueCount++
			}
		}
		if trueCount != 1 {
			return false
		}
	}
	return true
}
