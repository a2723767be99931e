package allocator

import (
	"testing"

	"github.com/jiwei/jiwei/pkg/model"
)

func TestShadowWindow(t *testing.T) {
	tests := []struct {
		name      string
		arrival   int
		departure int
		def       model.TimeWindowDefinition
		wantStart int
		wantEnd   int
	}{
		{
			name:      "恒等窗口",
			arrival:   10,
			departure: 35,
			def:       model.IdentityWindow(),
			wantStart: 10,
			wantEnd:   35,
		},
		{
			name:      "离场锚定前后扩展",
			arrival:   10,
			departure: 35,
			def: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorDeparture,
				StartOffsetMinutes: -10,
				EndAnchor:          model.AnchorDeparture,
				EndOffsetMinutes:   5,
			},
			wantStart: 25,
			wantEnd:   40,
		},
		{
			name:      "到达锚定双偏移",
			arrival:   20,
			departure: 55,
			def: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorArrival,
				StartOffsetMinutes: -5,
				EndAnchor:          model.AnchorArrival,
				EndOffsetMinutes:   10,
			},
			wantStart: 15,
			wantEnd:   30,
		},
		{
			name:      "覆盖占用并外扩",
			arrival:   20,
			departure: 55,
			def: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorArrival,
				StartOffsetMinutes: -5,
				EndAnchor:          model.AnchorDeparture,
				EndOffsetMinutes:   5,
			},
			wantStart: 15,
			wantEnd:   60,
		},
		{
			name:      "偏移组合导致窗口反转",
			arrival:   10,
			departure: 35,
			def: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorDeparture,
				StartOffsetMinutes: 10,
				EndAnchor:          model.AnchorArrival,
				EndOffsetMinutes:   0,
			},
			wantStart: 45,
			wantEnd:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ShadowWindow(tt.arrival, tt.departure, tt.def)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ShadowWindow() = (%d, %d), expected (%d, %d)",
					start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

// TestShadowWindow_Pure 同样的输入总是得到同样的输出
func TestShadowWindow_Pure(t *testing.T) {
	def := model.TimeWindowDefinition{
		StartAnchor:        model.AnchorDeparture,
		StartOffsetMinutes: -10,
		EndAnchor:          model.AnchorDeparture,
		EndOffsetMinutes:   5,
	}

	s1, e1 := ShadowWindow(10, 35, def)
	s2, e2 := ShadowWindow(10, 35, def)
	if s1 != s2 || e1 != e2 {
		t.Error("相同输入应得到相同输出")
	}
}
