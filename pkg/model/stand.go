// Package model 定义停机位分配引擎的核心数据模型
package model

import "fmt"

// Stand 停机位
// 仅包含标识，物理属性（机型限制等）已在可行性矩阵中预计算
type Stand struct {
	StandID string `json:"stand_id" db:"stand_id"`
}

// Validate 验证停机位
func (s Stand) Validate() error {
	if s.StandID == "" {
		return fmt.Errorf("停机位ID不能为空")
	}
	return nil
}

// StandIndex 构建停机位ID到下标的索引
func StandIndex(stands []Stand) map[string]int {
	index := make(map[string]int, len(stands))
	for i, s := range stands {
		index[s.StandID] = i
	}
	return index
}
