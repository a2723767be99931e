package allocator

import (
	"fmt"

	"github.com/jiwei/jiwei/pkg/errors"
	"github.com/jiwei/jiwei/pkg/model"
)

// Problem 一次分配的完整输入
// 所有数据在内存中整体传入，引擎不做任何解析或I/O
type Problem struct {
	Turns       []model.Turn             `json:"turns"`
	Stands      []model.Stand            `json:"stands"`
	Feasibility *model.FeasibilityMatrix `json:"-"`
	Rules       []model.AdjacencyRule    `json:"rules,omitempty"`
}

// Validate 校验输入
// 配置错误在任何求解尝试前立即中止：时间区间反转、矩阵维度不符、
// 规则引用未知停机位、重复标识
func (p *Problem) Validate() error {
	if len(p.Turns) == 0 {
		return errors.New(errors.CodeInvalidInput, "过站列表为空")
	}
	if len(p.Stands) == 0 {
		return errors.New(errors.CodeInvalidInput, "停机位列表为空")
	}
	if p.Feasibility == nil {
		return errors.New(errors.CodeInvalidInput, "缺少可行性矩阵")
	}

	seenTurns := make(map[string]bool, len(p.Turns))
	for _, t := range p.Turns {
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, errors.CodeInvalidTimeRange, "过站校验失败")
		}
		if seenTurns[t.TurnID] {
			return errors.New(errors.CodeValidationFail, fmt.Sprintf("过站ID重复: %s", t.TurnID))
		}
		seenTurns[t.TurnID] = true
	}

	standIdx := make(map[string]bool, len(p.Stands))
	for _, s := range p.Stands {
		if err := s.Validate(); err != nil {
			return errors.Wrap(err, errors.CodeValidationFail, "停机位校验失败")
		}
		if standIdx[s.StandID] {
			return errors.New(errors.CodeValidationFail, fmt.Sprintf("停机位ID重复: %s", s.StandID))
		}
		standIdx[s.StandID] = true
	}

	if err := p.Feasibility.CheckDims(len(p.Turns), len(p.Stands)); err != nil {
		return errors.Wrap(err, errors.CodeMatrixMismatch, "可行性矩阵维度不符")
	}

	for _, r := range p.Rules {
		if err := r.Validate(); err != nil {
			return errors.Wrap(err, errors.CodeValidationFail, "相邻规则校验失败")
		}
		if !standIdx[r.StandA] {
			return errors.UnknownStand(r.RuleID, r.StandA)
		}
		if !standIdx[r.StandB] {
			return errors.UnknownStand(r.RuleID, r.StandB)
		}
	}

	return nil
}
