package model

import "testing"

func TestTurn_Validate(t *testing.T) {
	tests := []struct {
		name    string
		turn    Turn
		wantErr bool
	}{
		{"正常过站", Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 35}, false},
		{"缺少ID", Turn{ArrivalTime: 10, DepartureTime: 35}, true},
		{"到达晚于离场", Turn{TurnID: "t1", ArrivalTime: 40, DepartureTime: 35}, true},
		{"到达等于离场", Turn{TurnID: "t1", ArrivalTime: 35, DepartureTime: 35}, true},
		{"负数时刻", Turn{TurnID: "t1", ArrivalTime: -20, DepartureTime: -5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.turn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTurn_Duration(t *testing.T) {
	turn := Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 35}
	if d := turn.Duration(); d != 25 {
		t.Errorf("Duration() = %d, expected 25", d)
	}
}

func TestTurn_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Turn
		expected bool
	}{
		{
			name:     "部分重叠",
			a:        Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 35},
			b:        Turn{TurnID: "t2", ArrivalTime: 20, DepartureTime: 55},
			expected: true,
		},
		{
			name:     "完全包含",
			a:        Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 60},
			b:        Turn{TurnID: "t2", ArrivalTime: 20, DepartureTime: 30},
			expected: true,
		},
		{
			name:     "首尾相接不算重叠",
			a:        Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 35},
			b:        Turn{TurnID: "t2", ArrivalTime: 35, DepartureTime: 60},
			expected: false,
		},
		{
			name:     "完全分离",
			a:        Turn{TurnID: "t1", ArrivalTime: 10, DepartureTime: 20},
			b:        Turn{TurnID: "t2", ArrivalTime: 40, DepartureTime: 60},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
			// 重叠关系对称
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("反向 Overlaps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTurnIndex(t *testing.T) {
	turns := []Turn{
		{TurnID: "t1", ArrivalTime: 0, DepartureTime: 10},
		{TurnID: "t2", ArrivalTime: 10, DepartureTime: 20},
	}

	idx := TurnIndex(turns)
	if idx["t1"] != 0 || idx["t2"] != 1 {
		t.Errorf("索引错误: %v", idx)
	}
}
