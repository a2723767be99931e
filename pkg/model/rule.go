package model

import "fmt"

// TimeAnchor 时间锚点（影子区间相对过站的参考时刻）
type TimeAnchor string

const (
	AnchorArrival   TimeAnchor = "ARRIVAL"   // 到达时刻
	AnchorDeparture TimeAnchor = "DEPARTURE" // 离场时刻
)

// Valid 检查锚点是否合法
func (a TimeAnchor) Valid() bool {
	return a == AnchorArrival || a == AnchorDeparture
}

// TimeWindowDefinition 影子区间定义
// 描述如何从过站的到达/离场时刻推导一段时间窗口：
// start = 锚点时刻 + 偏移量，end 同理，偏移量为带符号的分钟数
type TimeWindowDefinition struct {
	StartAnchor        TimeAnchor `json:"start_anchor" db:"start_anchor"`
	StartOffsetMinutes int        `json:"start_offset_minutes" db:"start_offset_minutes"`
	EndAnchor          TimeAnchor `json:"end_anchor" db:"end_anchor"`
	EndOffsetMinutes   int        `json:"end_offset_minutes" db:"end_offset_minutes"`
}

// Validate 验证窗口定义的锚点
// 偏移量是否会导致 start > end 依赖具体过站时刻，在模型装配阶段逐过站检查
func (d TimeWindowDefinition) Validate() error {
	if !d.StartAnchor.Valid() {
		return fmt.Errorf("无效的起始锚点: %q", d.StartAnchor)
	}
	if !d.EndAnchor.Valid() {
		return fmt.Errorf("无效的结束锚点: %q", d.EndAnchor)
	}
	return nil
}

// IdentityWindow 返回恒等窗口（与原始占用区间完全一致）
func IdentityWindow() TimeWindowDefinition {
	return TimeWindowDefinition{
		StartAnchor: AnchorArrival,
		EndAnchor:   AnchorDeparture,
	}
}

// AdjacencyRule 相邻冲突规则
// 两个物理相邻的停机位在各自的影子窗口内不得同时被占用
// stand_a/stand_b 的顺序仅用于关联各自的窗口定义，规则本身对方向不敏感
type AdjacencyRule struct {
	RuleID          string               `json:"rule_id" db:"rule_id"`
	Name            string               `json:"name" db:"name"`
	Description     string               `json:"description,omitempty" db:"description"`
	StandA          string               `json:"stand_a" db:"stand_a"`
	StandB          string               `json:"stand_b" db:"stand_b"`
	TimeConstraintA TimeWindowDefinition `json:"time_constraint_a"`
	TimeConstraintB TimeWindowDefinition `json:"time_constraint_b"`
}

// Validate 验证相邻规则
func (r AdjacencyRule) Validate() error {
	if r.RuleID == "" {
		return fmt.Errorf("规则ID不能为空")
	}
	if r.StandA == "" || r.StandB == "" {
		return fmt.Errorf("规则 %s 必须指定两个停机位", r.RuleID)
	}
	if err := r.TimeConstraintA.Validate(); err != nil {
		return fmt.Errorf("规则 %s 的A侧窗口无效: %w", r.RuleID, err)
	}
	if err := r.TimeConstraintB.Validate(); err != nil {
		return fmt.Errorf("规则 %s 的B侧窗口无效: %w", r.RuleID, err)
	}
	return nil
}
