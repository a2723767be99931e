// Package cpmodel 定义约束模型及求解器适配接口
//
// 引擎只依赖四种求解能力：布尔决策变量、由布尔变量门控的可选区间、
// "恰好一个为真"约束、"区间两两不重叠"约束。任何实现 Solver 接口
// 的后端都可以消费这里装配的模型。
package cpmodel

import (
	"context"
	"fmt"
)

// Status 求解状态
type Status string

const (
	StatusOptimal    Status = "OPTIMAL"    // 找到最优解（无目标函数时等价于完整搜索找到可行解）
	StatusFeasible   Status = "FEASIBLE"   // 找到可行解但搜索未完成
	StatusInfeasible Status = "INFEASIBLE" // 证明无解
	StatusUnknown    Status = "UNKNOWN"    // 未能得出结论（如超时）
)

// Solved 是否得到可用的赋值
func (s Status) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// BoolVar 布尔决策变量
type BoolVar struct {
	index int
	name  string
}

// Name 返回变量名
func (b *BoolVar) Name() string { return b.name }

// Index 返回变量在模型中的下标
func (b *BoolVar) Index() int { return b.index }

// IntervalVar 可选区间变量
// 区间 [start, end) 仅在 presence 为真时存在，start + size == end
type IntervalVar struct {
	start    int
	size     int
	end      int
	presence *BoolVar
	name     string
}

// Start 返回区间起点
func (iv *IntervalVar) Start() int { return iv.start }

// Size 返回区间长度
func (iv *IntervalVar) Size() int { return iv.size }

// End 返回区间终点
func (iv *IntervalVar) End() int { return iv.end }

// Presence 返回门控布尔变量
func (iv *IntervalVar) Presence() *BoolVar { return iv.presence }

// Name 返回区间名
func (iv *IntervalVar) Name() string { return iv.name }

// OverlapsWith 检查两个区间在同时存在时是否重叠（左闭右开，零长度区间不与任何区间重叠）
func (iv *IntervalVar) OverlapsWith(other *IntervalVar) bool {
	if iv.size == 0 || other.size == 0 {
		return false
	}
	return iv.start < other.end && other.start < iv.end
}

// Model 约束模型
// 一次求解尝试构建一个模型，求解后即丢弃，构建过程不做共享
type Model struct {
	bools      []*BoolVar
	intervals  []*IntervalVar
	exactlyOne [][]*BoolVar
	noOverlap  [][]*IntervalVar
}

// NewModel 创建空模型
func NewModel() *Model {
	return &Model{}
}

// NewBoolVar 声明布尔决策变量
func (m *Model) NewBoolVar(name string) *BoolVar {
	b := &BoolVar{index: len(m.bools), name: name}
	m.bools = append(m.bools, b)
	return b
}

// NewOptionalInterval 声明由 presence 门控的可选区间
func (m *Model) NewOptionalInterval(start, size, end int, presence *BoolVar, name string) (*IntervalVar, error) {
	if size < 0 {
		return nil, fmt.Errorf("区间 %s 长度为负: %d", name, size)
	}
	if start+size != end {
		return nil, fmt.Errorf("区间 %s 不满足 start+size==end: %d+%d != %d", name, start, size, end)
	}
	if presence == nil {
		return nil, fmt.Errorf("区间 %s 缺少门控变量", name)
	}
	iv := &IntervalVar{start: start, size: size, end: end, presence: presence, name: name}
	m.intervals = append(m.intervals, iv)
	return iv, nil
}

// AddExactlyOne 添加"恰好一个为真"约束
func (m *Model) AddExactlyOne(vars []*BoolVar) {
	group := make([]*BoolVar, len(vars))
	copy(group, vars)
	m.exactlyOne = append(m.exactlyOne, group)
}

// AddNoOverlap 添加"区间两两不重叠"约束
func (m *Model) AddNoOverlap(intervals []*IntervalVar) {
	group := make([]*IntervalVar, len(intervals))
	copy(group, intervals)
	m.noOverlap = append(m.noOverlap, group)
}

// Bools 返回所有布尔变量
func (m *Model) Bools() []*BoolVar { return m.bools }

// Intervals 返回所有区间变量
func (m *Model) Intervals() []*IntervalVar { return m.intervals }

// ExactlyOneGroups 返回所有恰好一个约束
func (m *Model) ExactlyOneGroups() [][]*BoolVar { return m.exactlyOne }

// NoOverlapGroups 返回所有不重叠约束
func (m *Model) NoOverlapGroups() [][]*IntervalVar { return m.noOverlap }

// NumBools 返回布尔变量数量
func (m *Model) NumBools() int { return len(m.bools) }

// NumIntervals 返回区间变量数量
func (m *Model) NumIntervals() int { return len(m.intervals) }

// NumConstraints 返回约束数量
func (m *Model) NumConstraints() int { return len(m.exactlyOne) + len(m.noOverlap) }

// Solution 求解结果
// 仅当 Status 为 OPTIMAL/FEASIBLE 时布尔赋值可用
type Solution struct {
	Status Status `json:"status"`
	values []bool
}

// NewSolution 创建求解结果（由求解器后端调用）
func NewSolution(status Status, values []bool) *Solution {
	return &Solution{Status: status, values: values}
}

// BoolValue 读取布尔变量的取值
func (s *Solution) BoolValue(b *BoolVar) bool {
	if s.values == nil || b.index >= len(s.values) {
		return false
	}
	return s.values[b.index]
}

// Solver 求解器适配接口（外部协作者能力）
type Solver interface {
	// Solve 对模型执行一次同步求解
	// 返回的 Solution 始终非 nil，判定结果通过 Status 表达，error 仅用于后端内部故障
	Solve(ctx context.Context, m *Model) (*Solution, error)

	// Name 返回求解器名称
	Name() string
}
