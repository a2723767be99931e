package repository

import (
	"context"

	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/model"
)

// ProblemStore 从数据库装载完整的分配问题
// 引擎本身不做I/O，装载是应用外壳的职责
type ProblemStore struct {
	stands *StandRepository
	turns  *TurnRepository
	rules  *RuleRepository
}

// NewProblemStore 创建问题装载器
func NewProblemStore(db DB) *ProblemStore {
	return &ProblemStore{
		stands: NewStandRepository(db),
		turns:  NewTurnRepository(db),
		rules:  NewRuleRepository(db),
	}
}

// LoadProblem 装载过站、停机位、限制和相邻规则，组装为分配问题
// 可行性矩阵默认全 true，再按显式限制置 false
func (s *ProblemStore) LoadProblem(ctx context.Context) (*allocator.Problem, error) {
	turns, err := s.turns.List(ctx)
	if err != nil {
		return nil, err
	}
	stands, err := s.stands.List(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.rules.List(ctx)
	if err != nil {
		return nil, err
	}
	restrictions, err := s.turns.ListRestrictions(ctx)
	if err != nil {
		return nil, err
	}

	feasibility := model.NewFeasibilityMatrix(len(turns), len(stands))
	turnIdx := model.TurnIndex(turns)
	standIdx := model.StandIndex(stands)
	for turnID, standIDs := range restrictions {
		tIdx, ok := turnIdx[turnID]
		if !ok {
			continue
		}
		for _, standID := range standIDs {
			if sIdx, ok := standIdx[standID]; ok {
				feasibility.Set(tIdx, sIdx, false)
			}
		}
	}

	return &allocator.Problem{
		Turns:       turns,
		Stands:      stands,
		Feasibility: feasibility,
		Rules:       rules,
	}, nil
}
