// Package rules 提供相邻规则模板库
package rules

import (
	"fmt"

	"github.com/jiwei/jiwei/pkg/model"
)

// TemplateParam 模板参数定义
type TemplateParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // int, string
	Description string `json:"description"`
	Default     string `json:"default,omitempty"`
}

// Template 相邻规则模板
// 预置的锚点/偏移组合，实例化时只需指定规则ID和两个停机位
type Template struct {
	Name        string                     `json:"name"`
	DisplayName string                     `json:"display_name"`
	Description string                     `json:"description"`
	WindowA     model.TimeWindowDefinition `json:"window_a"`
	WindowB     model.TimeWindowDefinition `json:"window_b"`
	Params      []TemplateParam            `json:"params,omitempty"`
}

// GetLibrary 获取完整的规则模板库
func GetLibrary() []Template {
	return []Template{
		{
			Name:        "mars_pair_occupancy",
			DisplayName: "MARS组合机位互斥",
			Description: "组合机位（如一个宽体位拆分为两个窄体位）的两个子位不得同时停放，影子窗口与真实占用一致。",
			WindowA:     model.IdentityWindow(),
			WindowB:     model.IdentityWindow(),
		},
		{
			Name:        "pushback_separation",
			DisplayName: "推出冲突分离",
			Description: "相邻机位的推出作业不得同时进行，影子窗口锚定离场时刻前后（离场前10分钟至离场后5分钟）。",
			WindowA: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorDeparture,
				StartOffsetMinutes: -10,
				EndAnchor:          model.AnchorDeparture,
				EndOffsetMinutes:   5,
			},
			WindowB: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorDeparture,
				StartOffsetMinutes: -10,
				EndAnchor:          model.AnchorDeparture,
				EndOffsetMinutes:   5,
			},
		},
		{
			Name:        "arrival_taxi_buffer",
			DisplayName: "进位滑行缓冲",
			Description: "一侧进位滑行期间另一侧不得占用，影子窗口锚定到达时刻前后（到达前5分钟至到达后10分钟）。",
			WindowA: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorArrival,
				StartOffsetMinutes: -5,
				EndAnchor:          model.AnchorArrival,
				EndOffsetMinutes:   10,
			},
			WindowB: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorArrival,
				StartOffsetMinutes: -5,
				EndAnchor:          model.AnchorArrival,
				EndOffsetMinutes:   10,
			},
		},
		{
			Name:        "wingspan_clearance",
			DisplayName: "翼展净距保护",
			Description: "大翼展机型占用期间相邻机位全程不可用，影子窗口覆盖整个占用并向两端各扩展5分钟。",
			WindowA: model.TimeWindowDefinition{
				StartAnchor:        model.AnchorArrival,
				StartOffsetMinutes: -5,
				EndAnchor:          model.AnchorDeparture,
				EndOffsetMinutes:   5,
			},
			WindowB: model.IdentityWindow(),
		},
	}
}

// Instantiate 按模板实例化一条相邻规则
func Instantiate(templateName, ruleID, standA, standB string) (model.AdjacencyRule, error) {
	for _, t := range GetLibrary() {
		if t.Name != templateName {
			continue
		}
		rule := model.AdjacencyRule{
			RuleID:          ruleID,
			Name:            fmt.Sprintf("%s_%s_%s", standA, standB, t.Name),
			Description:     t.Description,
			StandA:          standA,
			StandB:          standB,
			TimeConstraintA: t.WindowA,
			TimeConstraintB: t.WindowB,
		}
		return rule, rule.Validate()
	}
	return model.AdjacencyRule{}, fmt.Errorf("未知的规则模板: %s", templateName)
}
