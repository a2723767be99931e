package stats

import (
	"testing"

	"github.com/jiwei/jiwei/pkg/allocator"
	"github.com/jiwei/jiwei/pkg/model"
)

func TestCalculateUtilization(t *testing.T) {
	p := &allocator.Problem{
		Turns: []model.Turn{
			{TurnID: "t1", ArrivalTime: 0, DepartureTime: 60},
			{TurnID: "t2", ArrivalTime: 30, DepartureTime: 90},
			{TurnID: "t3", ArrivalTime: 100, DepartureTime: 120},
		},
		Stands:      []model.Stand{{StandID: "A"}, {StandID: "B"}, {StandID: "C"}},
		Feasibility: model.NewFeasibilityMatrix(3, 3),
	}
	assignments := []allocator.Assignment{
		{TurnID: "t1", StandID: "A"},
		{TurnID: "t2", StandID: "B"},
		{TurnID: "t3", StandID: "A"},
	}

	m := CalculateUtilization(p, assignments)

	if m.StandCount != 3 {
		t.Errorf("StandCount = %d, expected 3", m.StandCount)
	}
	if m.UsedStands != 2 {
		t.Errorf("UsedStands = %d, expected 2", m.UsedStands)
	}
	if m.HorizonStart != 0 || m.HorizonEnd != 120 {
		t.Errorf("时间跨度 = [%d, %d], expected [0, 120]", m.HorizonStart, m.HorizonEnd)
	}
	if m.OccupiedMinutes["A"] != 80 {
		t.Errorf("机位 A 占用 = %d, expected 80", m.OccupiedMinutes["A"])
	}
	if m.OccupiedMinutes["B"] != 60 {
		t.Errorf("机位 B 占用 = %d, expected 60", m.OccupiedMinutes["B"])
	}
	if m.BusiestStand != "A" {
		t.Errorf("BusiestStand = %s, expected A", m.BusiestStand)
	}

	// 140 分钟总占用 / (3 机位 × 120 分钟跨度)
	expected := 140.0 / 360.0
	if diff := m.UtilizationRate - expected; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("UtilizationRate = %f, expected %f", m.UtilizationRate, expected)
	}
}

func TestCalculateUtilization_Empty(t *testing.T) {
	p := &allocator.Problem{
		Stands: []model.Stand{{StandID: "A"}},
	}

	m := CalculateUtilization(p, nil)
	if m.UsedStands != 0 || m.UtilizationRate != 0 {
		t.Errorf("空问题的利用率应为零: %+v", m)
	}
}

func TestCalculateUtilization_UnknownAssignmentIgnored(t *testing.T) {
	p := &allocator.Problem{
		Turns: []model.Turn{
			{TurnID: "t1", ArrivalTime: 0, DepartureTime: 60},
		},
		Stands:      []model.Stand{{StandID: "A"}},
		Feasibility: model.NewFeasibilityMatrix(1, 1),
	}
	assignments := []allocator.Assignment{
		{TurnID: "ghost", StandID: "A"},
		{TurnID: "t1", StandID: "A"},
	}

	m := CalculateUtilization(p, assignments)
	if m.OccupiedMinutes["A"] != 60 {
		t.Errorf("未知过站的分配应被忽略: %d", m.OccupiedMinutes["A"])
	}
}
