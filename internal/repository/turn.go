package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jiwei/jiwei/pkg/model"
)

// TurnRepository 过站仓储
type TurnRepository struct {
	db DB
}

// NewTurnRepository 创建过站仓储
func NewTurnRepository(db DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Create 创建过站
func (r *TurnRepository) Create(ctx context.Context, turn model.Turn) error {
	if err := turn.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO turns (
			id, turn_id, turn_seq, flight_id, arrival_time, departure_time,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		uuid.New(), turn.TurnID, turn.TurnSeq, turn.FlightID,
		turn.ArrivalTime, turn.DepartureTime, now, now,
	)
	if err != nil {
		return fmt.Errorf("创建过站失败: %w", err)
	}

	return nil
}

// List 列出所有过站（按到达时刻）
func (r *TurnRepository) List(ctx context.Context) ([]model.Turn, error) {
	query := `
		SELECT turn_id, turn_seq, flight_id, arrival_time, departure_time
		FROM turns
		WHERE deleted_at IS NULL
		ORDER BY arrival_time, turn_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询过站失败: %w", err)
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		if err := rows.Scan(&t.TurnID, &t.TurnSeq, &t.FlightID, &t.ArrivalTime, &t.DepartureTime); err != nil {
			return nil, fmt.Errorf("读取过站失败: %w", err)
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// ListRestrictions 列出显式的不可行组合 (turn_id, stand_id)
// 可行性矩阵默认全 true，仅存储被限制的组合
func (r *TurnRepository) ListRestrictions(ctx context.Context) (map[string][]string, error) {
	query := `
		SELECT turn_id, stand_id FROM stand_restrictions
		ORDER BY turn_id, stand_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询停放限制失败: %w", err)
	}
	defer rows.Close()

	restrictions := make(map[string][]string)
	for rows.Next() {
		var turnID, standID string
		if err := rows.Scan(&turnID, &standID); err != nil {
			return nil, fmt.Errorf("读取停放限制失败: %w", err)
		}
		restrictions[turnID] = append(restrictions[turnID], standID)
	}

	return restrictions, rows.Err()
}
