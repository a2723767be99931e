package allocator

import (
	"fmt"

	"github.com/jiwei/jiwei/pkg/cpmodel"
	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/model"
)

// AssembleCoreConstraints 装配主模型约束
//
// 两族互相独立的约束：每个过站恰好停放一个机位；
// 同一机位上所有存在的占用区间两两不重叠（左闭右开，首尾相接不冲突）
func AssembleCoreConstraints(m *cpmodel.Model, vars *Variables) {
	for _, turnID := range vars.TurnOrder {
		m.AddExactlyOne(vars.PresenceByTurn[turnID])
	}

	for _, standID := range vars.StandOrder {
		intervals := vars.IntervalsByStand[standID]
		if len(intervals) > 0 {
			m.AddNoOverlap(intervals)
		}
	}
}

// AssembleAdjacencyConstraints 装配相邻冲突约束
//
// 逐规则扫描全部候选：停机位命中规则任一侧的候选，按该侧的窗口定义
// 推导影子区间，影子区间与父候选共用同一个存在变量。一条规则的
// 全部影子区间（两侧合并）进入同一个不重叠约束。两侧均无命中候选的
// 规则不产生约束（对本次问题实例不生效，不是错误）。
//
// 推导出 start > end 的影子窗口视为硬性配置错误并立即中止装配：
// 静默丢弃会让规则恰好对它声明要保护的过站失效。
func AssembleAdjacencyConstraints(m *cpmodel.Model, vars *Variables, rules []model.AdjacencyRule) error {
	for _, rule := range rules {
		var shadows []*cpmodel.IntervalVar

		for _, cand := range vars.Candidates {
			var def model.TimeWindowDefinition
			switch cand.Stand.StandID {
			case rule.StandA:
				def = rule.TimeConstraintA
			case rule.StandB:
				def = rule.TimeConstraintB
			default:
				continue
			}

			start, end := ShadowWindow(cand.Turn.ArrivalTime, cand.Turn.DepartureTime, def)
			if start > end {
				return errors.InvalidTimeWindow(rule.RuleID, cand.Turn.TurnID, start, end)
			}

			shadow, err := m.NewOptionalInterval(
				start,
				end-start,
				end,
				cand.Present,
				fmt.Sprintf("shadow_%s_%s_%s", rule.Name, cand.Turn.TurnID, cand.Stand.StandID),
			)
			if err != nil {
				return errors.Wrap(err, errors.CodeInternal, "创建影子区间失败")
			}
			shadows = append(shadows, shadow)
		}

		if len(shadows) > 0 {
			m.AddNoOverlap(shadows)
		}
	}

	return nil
}
