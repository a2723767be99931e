package model

import "fmt"

// Turn 过站（一次航空器地面停留，从到达到离场）
// 时间为同一时间轴上的整数分钟（相对参考时刻）
type Turn struct {
	TurnID        string `json:"turn_id" db:"turn_id"`
	TurnSeq       int    `json:"turn_seq" db:"turn_seq"` // 区分同一航班的多次过站
	FlightID      string `json:"flight_id" db:"flight_id"`
	ArrivalTime   int    `json:"arrival_time" db:"arrival_time"`
	DepartureTime int    `json:"departure_time" db:"departure_time"`
}

// Validate 验证过站
func (t Turn) Validate() error {
	if t.TurnID == "" {
		return fmt.Errorf("过站ID不能为空")
	}
	if t.ArrivalTime >= t.DepartureTime {
		return fmt.Errorf("过站 %s 到达时间 %d 必须早于离场时间 %d", t.TurnID, t.ArrivalTime, t.DepartureTime)
	}
	return nil
}

// Duration 返回占用时长（分钟）
func (t Turn) Duration() int {
	return t.DepartureTime - t.ArrivalTime
}

// Overlaps 检查两次过站的占用区间是否重叠
// 区间为左闭右开 [arrival, departure)，首尾相接不算重叠
func (t Turn) Overlaps(other Turn) bool {
	return t.ArrivalTime < other.DepartureTime && other.ArrivalTime < t.DepartureTime
}

// TurnIndex 构建过站ID到下标的索引
func TurnIndex(turns []Turn) map[string]int {
	index := make(map[string]int, len(turns))
	for i, t := range turns {
		index[t.TurnID] = i
	}
	return index
}
