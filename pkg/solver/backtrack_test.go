package solver

import (
	"context"
	"testing"

	"github.com/jiwei/jiwei/pkg/cpmodel"
)

func TestBacktrackSolver_Name(t *testing.T) {
	s := NewBacktrackSolver()
	if s.Name() != "BacktrackSolver" {
		t.Errorf("Name() = %s", s.Name())
	}
}

// TestSolve_ExactlyOne 单个恰好一个约束：恰有一个变量为真
func TestSolve_ExactlyOne(t *testing.T) {
	m := cpmodel.NewModel()
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	c := m.NewBoolVar("c")
	m.AddExactlyOne([]*cpmodel.BoolVar{a, b, c})

	sol, err := NewBacktrackSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusOptimal {
		t.Fatalf("Status = %s, expected OPTIMAL", sol.Status)
	}

	trueCount := 0
	for _, v := range []*cpmodel.BoolVar{a, b, c} {
		if sol.BoolValue(v) {
			trueCount++
		}
	}
	if trueCount != 1 {
		t.Errorf("真值数 = %d, expected 1", trueCount)
	}
}

// TestSolve_NoOverlapForcesAlternative 重叠区间迫使求解器选择不冲突的组合
func TestSolve_NoOverlapForcesAlternative(t *testing.T) {
	m := cpmodel.NewModel()

	// 两个"任务"各有两个候选位置，位置0上的区间互相重叠
	a0 := m.NewBoolVar("a0")
	a1 := m.NewBoolVar("a1")
	b0 := m.NewBoolVar("b0")
	b1 := m.NewBoolVar("b1")

	ivA0, _ := m.NewOptionalInterval(0, 30, 30, a0, "a@0")
	ivB0, _ := m.NewOptionalInterval(10, 30, 40, b0, "b@0")

	m.AddExactlyOne([]*cpmodel.BoolVar{a0, a1})
	m.AddExactlyOne([]*cpmodel.BoolVar{b0, b1})
	m.AddNoOverlap([]*cpmodel.IntervalVar{ivA0, ivB0})

	sol, err := NewBacktrackSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusOptimal {
		t.Fatalf("Status = %s, expected OPTIMAL", sol.Status)
	}
	if sol.BoolValue(a0) && sol.BoolValue(b0) {
		t.Error("重叠的两个区间不应同时存在")
	}
}

// TestSolve_Infeasible 穷尽搜索后证明无解
func TestSolve_Infeasible(t *testing.T) {
	m := cpmodel.NewModel()

	// 两个任务各只有一个候选，且区间重叠
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	ivA, _ := m.NewOptionalInterval(0, 30, 30, a, "a")
	ivB, _ := m.NewOptionalInterval(10, 30, 40, b, "b")

	m.AddExactlyOne([]*cpmodel.BoolVar{a})
	m.AddExactlyOne([]*cpmodel.BoolVar{b})
	m.AddNoOverlap([]*cpmodel.IntervalVar{ivA, ivB})

	sol, err := NewBacktrackSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusInfeasible {
		t.Errorf("Status = %s, expected INFEASIBLE", sol.Status)
	}
}

// TestSolve_BackToBackFeasible 首尾相接的区间可以共存
func TestSolve_BackToBackFeasible(t *testing.T) {
	m := cpmodel.NewModel()

	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	ivA, _ := m.NewOptionalInterval(0, 30, 30, a, "a")
	ivB, _ := m.NewOptionalInterval(30, 30, 60, b, "b")

	m.AddExactlyOne([]*cpmodel.BoolVar{a})
	m.AddExactlyOne([]*cpmodel.BoolVar{b})
	m.AddNoOverlap([]*cpmodel.IntervalVar{ivA, ivB})

	sol, err := NewBacktrackSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusOptimal {
		t.Errorf("Status = %s, expected OPTIMAL", sol.Status)
	}
}

// TestSolve_EmptyModel 空模型平凡可解
func TestSolve_EmptyModel(t *testing.T) {
	sol, err := NewBacktrackSolver().Solve(context.Background(), cpmodel.NewModel())
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusOptimal {
		t.Errorf("Status = %s, expected OPTIMAL", sol.Status)
	}
}

// TestSolve_Cancelled 取消的上下文返回 UNKNOWN 而非 INFEASIBLE
//
// 鸽笼实例（8个任务挤7个互斥位置）保证搜索树足够大，
// 使取消检查在穷尽前触发
func TestSolve_Cancelled(t *testing.T) {
	m := cpmodel.NewModel()

	const tasks, slots = 8, 7
	for i := 0; i < tasks; i++ {
		var presences []*cpmodel.BoolVar
		for j := 0; j < slots; j++ {
			p := m.NewBoolVar("p")
			presences = append(presences, p)
		}
		m.AddExactlyOne(presences)
	}
	// 每个位置一个不重叠组：所有任务的区间完全相同，两两冲突
	bools := m.Bools()
	for j := 0; j < slots; j++ {
		var intervals []*cpmodel.IntervalVar
		for i := 0; i < tasks; i++ {
			iv, err := m.NewOptionalInterval(0, 100, 100, bools[i*slots+j], "iv")
			if err != nil {
				t.Fatalf("创建区间失败: %v", err)
			}
			intervals = append(intervals, iv)
		}
		m.AddNoOverlap(intervals)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := NewBacktrackSolver().Solve(ctx, m)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Status != cpmodel.StatusUnknown {
		t.Errorf("Status = %s, expected UNKNOWN", sol.Status)
	}
}
