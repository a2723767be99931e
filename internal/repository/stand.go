package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jiwei/jiwei/pkg/model"
)

// StandRepository 停机位仓储
type StandRepository struct {
	db DB
}

// NewStandRepository 创建停机位仓储
func NewStandRepository(db DB) *StandRepository {
	return &StandRepository{db: db}
}

// Create 创建停机位
func (r *StandRepository) Create(ctx context.Context, stand model.Stand) error {
	query := `
		INSERT INTO stands (id, stand_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, uuid.New(), stand.StandID, now, now)
	if err != nil {
		return fmt.Errorf("创建停机位失败: %w", err)
	}

	return nil
}

// List 列出所有停机位（按创建顺序）
func (r *StandRepository) List(ctx context.Context) ([]model.Stand, error) {
	query := `
		SELECT stand_id FROM stands
		WHERE deleted_at IS NULL
		ORDER BY created_at, stand_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询停机位失败: %w", err)
	}
	defer rows.Close()

	var stands []model.Stand
	for rows.Next() {
		var s model.Stand
		if err := rows.Scan(&s.StandID); err != nil {
			return nil, fmt.Errorf("读取停机位失败: %w", err)
		}
		stands = append(stands, s)
	}

	return stands, rows.Err()
}

// Delete 软删除停机位
func (r *StandRepository) Delete(ctx context.Context, standID string) error {
	query := `UPDATE stands SET deleted_at = $2 WHERE stand_id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, standID, time.Now())
	if err != nil {
		return fmt.Errorf("删除停机位失败: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("停机位不存在")
	}

	return nil
}
