// Package allocator 提供停机位分配的约束模型装配与求解编排
package allocator

import "github.com/jiwei/jiwei/pkg/model"

// ShadowWindow 计算影子窗口
//
// 纯函数：根据过站的到达/离场时刻和窗口定义推导 (start, end)，
// start = 起始锚点时刻 + 起始偏移，end = 结束锚点时刻 + 结束偏移。
// 偏移组合可能推导出 start > end，由调用方（装配阶段）判定并报错。
func ShadowWindow(arrival, departure int, def model.TimeWindowDefinition) (int, int) {
	start := arrival
	if def.StartAnchor == model.AnchorDeparture {
		start = departure
	}
	start += def.StartOffsetMinutes

	end := arrival
	if def.EndAnchor == model.AnchorDeparture {
		end = departure
	}
	end += def.EndOffsetMinutes

	return start, end
}
