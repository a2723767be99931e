// Package validator 提供分配方案的独立校验
package validator

import (
	"fmt"

	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/model"
)

// ViolationType 违规类型
type ViolationType string

const (
	ViolationUnplaced   ViolationType = "unplaced"   // 过站未分配
	ViolationDuplicate  ViolationType = "duplicate"  // 过站被重复分配
	ViolationUnknown    ViolationType = "unknown"    // 分配引用了未知的过站或停机位
	ViolationInfeasible ViolationType = "infeasible" // 违反可行性矩阵
	ViolationOverlap    ViolationType = "overlap"    // 同一机位占用区间重叠
	ViolationAdjacency  ViolationType = "adjacency"  // 相邻规则影子窗口重叠
)

// Violation 违规信息
type Violation struct {
	Type    ViolationType `json:"type"`
	TurnID  string        `json:"turn_id,omitempty"`
	StandID string        `json:"stand_id,omitempty"`
	RuleID  string        `json:"rule_id,omitempty"`
	Message string        `json:"message"`
}

// PlanVerifier 方案校验器
// 不依赖求解器，直接对照输入复查一份分配方案，供回归测试和API复核使用
type PlanVerifier struct{}

// NewPlanVerifier 创建方案校验器
func NewPlanVerifier() *PlanVerifier {
	return &PlanVerifier{}
}

// Verify 校验分配方案
// 依次检查：每个过站恰好分配一次、可行性矩阵、机位占用不重叠、相邻规则
func (v *PlanVerifier) Verify(p *allocator.Problem, assignments []allocator.Assignment) []Violation {
	var violations []Violation

	turnIdx := model.TurnIndex(p.Turns)
	standIdx := model.StandIndex(p.Stands)

	// 过站 → 分配的机位
	assigned := make(map[string]string, len(assignments))
	for _, a := range assignments {
		tIdx, turnOK := turnIdx[a.TurnID]
		sIdx, standOK := standIdx[a.StandID]
		if !turnOK || !standOK {
			violations = append(violations, Violation{
				Type:    ViolationUnknown,
				TurnID:  a.TurnID,
				StandID: a.StandID,
				Message: fmt.Sprintf("分配引用了未知的过站或停机位: %s -> %s", a.TurnID, a.StandID),
			})
			continue
		}
		if prev, dup := assigned[a.TurnID]; dup {
			violations = append(violations, Violation{
				Type:    ViolationDuplicate,
				TurnID:  a.TurnID,
				Message: fmt.Sprintf("过站 %s 被重复分配: %s 和 %s", a.TurnID, prev, a.StandID),
			})
			continue
		}
		assigned[a.TurnID] = a.StandID

		if !p.Feasibility.Feasible(tIdx, sIdx) {
			violations = append(violations, Violation{
				Type:    ViolationInfeasible,
				TurnID:  a.TurnID,
				StandID: a.StandID,
				Message: fmt.Sprintf("过站 %s 不允许停放机位 %s", a.TurnID, a.StandID),
			})
		}
	}

	for _, t := range p.Turns {
		if _, ok := assigned[t.TurnID]; !ok {
			violations = append(violations, Violation{
				Type:    ViolationUnplaced,
				TurnID:  t.TurnID,
				Message: fmt.Sprintf("过站 %s 未分配机位", t.TurnID),
			})
		}
	}

	violations = append(violations, v.checkStandOverlaps(p, assigned, turnIdx)...)
	violations = append(violations, v.checkAdjacency(p, assigned, turnIdx)...)

	return violations
}

// checkStandOverlaps 检查同一机位上的占用重叠
func (v *PlanVerifier) checkStandOverlaps(p *allocator.Problem, assigned map[string]string, turnIdx map[string]int) []Violation {
	var violations []Violation

	byStand := make(map[string][]model.Turn)
	for turnID, standID := range assigned {
		byStand[standID] = append(byStand[standID], p.Turns[turnIdx[turnID]])
	}

	for standID, turns := range byStand {
		for i := 0; i < len(turns); i++ {
			for j := i + 1; j < len(turns); j++ {
				if turns[i].Overlaps(turns[j]) {
					violations = append(violations, Violation{
						Type:    ViolationOverlap,
						StandID: standID,
						Message: fmt.Sprintf("机位 %s 上过站 %s 与 %s 占用重叠",
							standID, turns[i].TurnID, turns[j].TurnID),
					})
				}
			}
		}
	}

	return violations
}

// checkAdjacency 检查相邻规则的影子窗口重叠
func (v *PlanVerifier) checkAdjacency(p *allocator.Problem, assigned map[string]string, turnIdx map[string]int) []Violation {
	var violations []Violation

	for _, rule := range p.Rules {
		// 收集规则两侧命中的影子窗口
		type shadow struct {
			turnID     string
			start, end int
		}
		var shadows []shadow

		for turnID, standID := range assigned {
			var def model.TimeWindowDefinition
			switch standID {
			case rule.StandA:
				def = rule.TimeConstraintA
			case rule.StandB:
				def = rule.TimeConstraintB
			default:
				continue
			}
			t := p.Turns[turnIdx[turnID]]
			start, end := allocator.ShadowWindow(t.ArrivalTime, t.DepartureTime, def)
			if start >= end {
				// 空窗口不与任何窗口冲突
				continue
			}
			shadows = append(shadows, shadow{turnID: turnID, start: start, end: end})
		}

		for i := 0; i < len(shadows); i++ {
			for j := i + 1; j < len(shadows); j++ {
				if shadows[i].start < shadows[j].end && shadows[j].start < shadows[i].end {
					violations = append(violations, Violation{
						Type:   ViolationAdjacency,
						RuleID: rule.RuleID,
						Message: fmt.Sprintf("规则 %s: 过站 %s 与 %s 的影子窗口重叠",
							rule.RuleID, shadows[i].turnID, shadows[j].turnID),
					})
				}
			}
		}
	}

	return violations
}
