package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jiwei/jiwei/pkg/model"
)

// RuleRepository 相邻规则仓储
type RuleRepository struct {
	db DB
}

// NewRuleRepository 创建相邻规则仓储
func NewRuleRepository(db DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create 创建相邻规则
func (r *RuleRepository) Create(ctx context.Context, rule model.AdjacencyRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO adjacency_rules (
			id, rule_id, name, description, stand_a, stand_b,
			start_anchor_a, start_offset_a, end_anchor_a, end_offset_a,
			start_anchor_b, start_offset_b, end_anchor_b, end_offset_b,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		uuid.New(), rule.RuleID, rule.Name, rule.Description, rule.StandA, rule.StandB,
		string(rule.TimeConstraintA.StartAnchor), rule.TimeConstraintA.StartOffsetMinutes,
		string(rule.TimeConstraintA.EndAnchor), rule.TimeConstraintA.EndOffsetMinutes,
		string(rule.TimeConstraintB.StartAnchor), rule.TimeConstraintB.StartOffsetMinutes,
		string(rule.TimeConstraintB.EndAnchor), rule.TimeConstraintB.EndOffsetMinutes,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("创建相邻规则失败: %w", err)
	}

	return nil
}

// GetByRuleID 按规则ID查询
func (r *RuleRepository) GetByRuleID(ctx context.Context, ruleID string) (*model.AdjacencyRule, error) {
	query := `
		SELECT rule_id, name, description, stand_a, stand_b,
			start_anchor_a, start_offset_a, end_anchor_a, end_offset_a,
			start_anchor_b, start_offset_b, end_anchor_b, end_offset_b
		FROM adjacency_rules
		WHERE rule_id = $1 AND deleted_at IS NULL
	`

	rule := &model.AdjacencyRule{}
	var startA, endA, startB, endB string
	err := r.db.QueryRowContext(ctx, query, ruleID).Scan(
		&rule.RuleID, &rule.Name, &rule.Description, &rule.StandA, &rule.StandB,
		&startA, &rule.TimeConstraintA.StartOffsetMinutes,
		&endA, &rule.TimeConstraintA.EndOffsetMinutes,
		&startB, &rule.TimeConstraintB.StartOffsetMinutes,
		&endB, &rule.TimeConstraintB.EndOffsetMinutes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询相邻规则失败: %w", err)
	}

	rule.TimeConstraintA.StartAnchor = model.TimeAnchor(startA)
	rule.TimeConstraintA.EndAnchor = model.TimeAnchor(endA)
	rule.TimeConstraintB.StartAnchor = model.TimeAnchor(startB)
	rule.TimeConstraintB.EndAnchor = model.TimeAnchor(endB)

	return rule, nil
}

// List 列出所有相邻规则
func (r *RuleRepository) List(ctx context.Context) ([]model.AdjacencyRule, error) {
	query := `
		SELECT rule_id, name, description, stand_a, stand_b,
			start_anchor_a, start_offset_a, end_anchor_a, end_offset_a,
			start_anchor_b, start_offset_b, end_anchor_b, end_offset_b
		FROM adjacency_rules
		WHERE deleted_at IS NULL
		ORDER BY created_at, rule_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询相邻规则失败: %w", err)
	}
	defer rows.Close()

	var rules []model.AdjacencyRule
	for rows.Next() {
		var rule model.AdjacencyRule
		var startA, endA, startB, endB string
		if err := rows.Scan(
			&rule.RuleID, &rule.Name, &rule.Description, &rule.StandA, &rule.StandB,
			&startA, &rule.TimeConstraintA.StartOffsetMinutes,
			&endA, &rule.TimeConstraintA.EndOffsetMinutes,
			&startB, &rule.TimeConstraintB.StartOffsetMinutes,
			&endB, &rule.TimeConstraintB.EndOffsetMinutes,
		); err != nil {
			return nil, fmt.Errorf("读取相邻规则失败: %w", err)
		}
		rule.TimeConstraintA.StartAnchor = model.TimeAnchor(startA)
		rule.TimeConstraintA.EndAnchor = model.TimeAnchor(endA)
		rule.TimeConstraintB.StartAnchor = model.TimeAnchor(startB)
		rule.TimeConstraintB.EndAnchor = model.TimeAnchor(endB)
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}
