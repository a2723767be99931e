// Package stats 提供分配方案的统计分析
package stats

import (
	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/model"
)

// UtilizationMetrics 停机位利用率指标
type UtilizationMetrics struct {
	StandCount      int            `json:"stand_count"`
	UsedStands      int            `json:"used_stands"`
	HorizonStart    int            `json:"horizon_start"` // 最早到达时刻
	HorizonEnd      int            `json:"horizon_end"`   // 最晚离场时刻
	OccupiedMinutes map[string]int `json:"occupied_minutes"`
	UtilizationRate float64        `json:"utilization_rate"` // 总占用时长 / (机位数 × 时间跨度)
	BusiestStand    string         `json:"busiest_stand,omitempty"`
}

// CalculateUtilization 计算方案的机位利用率
func CalculateUtilization(p *allocator.Problem, assignments []allocator.Assignment) *UtilizationMetrics {
	metrics := &UtilizationMetrics{
		StandCount:      len(p.Stands),
		OccupiedMinutes: make(map[string]int),
	}
	if len(p.Turns) == 0 {
		return metrics
	}

	turnIdx := model.TurnIndex(p.Turns)

	metrics.HorizonStart = p.Turns[0].ArrivalTime
	metrics.HorizonEnd = p.Turns[0].DepartureTime
	for _, t := range p.Turns[1:] {
		if t.ArrivalTime < metrics.HorizonStart {
			metrics.HorizonStart = t.ArrivalTime
		}
		if t.DepartureTime > metrics.HorizonEnd {
			metrics.HorizonEnd = t.DepartureTime
		}
	}

	total := 0
	for _, a := range assignments {
		idx, ok := turnIdx[a.TurnID]
		if !ok {
			continue
		}
		d := p.Turns[idx].Duration()
		metrics.OccupiedMinutes[a.StandID] += d
		total += d
	}
	metrics.UsedStands = len(metrics.OccupiedMinutes)

	horizon := metrics.HorizonEnd - metrics.HorizonStart
	if horizon > 0 && metrics.StandCount > 0 {
		metrics.UtilizationRate = float64(total) / float64(horizon*metrics.StandCount)
	}

	busiest := 0
	for standID, minutes := range metrics.OccupiedMinutes {
		if minutes > busiest || (minutes == busiest && (metrics.BusiestStand == "" || standID < metrics.BusiestStand)) {
			busiest = minutes
			metrics.BusiestStand = standID
		}
	}

	return metrics
}
