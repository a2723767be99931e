package allocator

import (
	"fmt"

	"github.com/jiwei/jiwei/pkg/cpmodel"
	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/model"
)

// Candidate 候选分配：一个可行的 (过站, 停机位) 组合
// Present 为真即表示该过站最终停放该机位，Interval 为占用区间 [arrival, departure)
type Candidate struct {
	Turn     model.Turn
	Stand    model.Stand
	Present  *cpmodel.BoolVar
	Interval *cpmodel.IntervalVar
}

// Variables 变量装配结果
// 显式的构建阶段产物，传引用给两个约束装配器使用，不依赖任何全局注册表
type Variables struct {
	Candidates []*Candidate

	// 停机位ID → 该机位上所有候选的占用区间（用于不重叠约束）
	IntervalsByStand map[string][]*cpmodel.IntervalVar
	// 过站ID → 该过站所有候选的存在变量（用于恰好一个约束）
	PresenceByTurn map[string][]*cpmodel.BoolVar

	// 遍历顺序与输入一致
	TurnOrder  []string
	StandOrder []string
}

// BuildVariables 为每个可行的 (过站, 停机位) 组合创建变量
//
// 不可行组合不创建任何候选，这是唯一的可行性剪枝点。
// 某过站没有任何可行机位时立即返回结构性不可行错误，
// 而不是留给求解器报一个笼统的 INFEASIBLE。
func BuildVariables(m *cpmodel.Model, p *Problem) (*Variables, error) {
	vars := &Variables{
		IntervalsByStand: make(map[string][]*cpmodel.IntervalVar),
		PresenceByTurn:   make(map[string][]*cpmodel.BoolVar),
		TurnOrder:        make([]string, 0, len(p.Turns)),
		StandOrder:       make([]string, 0, len(p.Stands)),
	}
	for _, s := range p.Stands {
		vars.StandOrder = append(vars.StandOrder, s.StandID)
	}

	for tIdx, turn := range p.Turns {
		vars.TurnOrder = append(vars.TurnOrder, turn.TurnID)

		for sIdx, stand := range p.Stands {
			if !p.Feasibility.Feasible(tIdx, sIdx) {
				continue
			}

			present := m.NewBoolVar(fmt.Sprintf("%s_on_%s", turn.TurnID, stand.StandID))
			interval, err := m.NewOptionalInterval(
				turn.ArrivalTime,
				turn.Duration(),
				turn.DepartureTime,
				present,
				fmt.Sprintf("stand_%s_for_%s", stand.StandID, turn.TurnID),
			)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeInternal, "创建占用区间失败")
			}

			vars.Candidates = append(vars.Candidates, &Candidate{
				Turn:     turn,
				Stand:    stand,
				Present:  present,
				Interval: interval,
			})
			vars.IntervalsByStand[stand.StandID] = append(vars.IntervalsByStand[stand.StandID], interval)
			vars.PresenceByTurn[turn.TurnID] = append(vars.PresenceByTurn[turn.TurnID], present)
		}

		if len(vars.PresenceByTurn[turn.TurnID]) == 0 {
			return nil, errors.NoFeasibleStand(turn.TurnID)
		}
	}

	return vars, nil
}
