package model

import "fmt"

// FeasibilityMatrix 可行性矩阵
// (过站 × 停机位) 的布尔关系，true 表示该过站允许停放该机位
// 由静态规则（机型、翼展、国际/国内等）预先计算后整体传入引擎
type FeasibilityMatrix struct {
	turnCount  int
	standCount int
	cells      []bool
}

// NewFeasibilityMatrix 创建全 true 的可行性矩阵
func NewFeasibilityMatrix(turnCount, standCount int) *FeasibilityMatrix {
	cells := make([]bool, turnCount*standCount)
	for i := range cells {
		cells[i] = true
	}
	return &FeasibilityMatrix{
		turnCount:  turnCount,
		standCount: standCount,
		cells:      cells,
	}
}

// FeasibilityFromRows 从行优先的布尔切片构建矩阵
func FeasibilityFromRows(rows [][]bool) (*FeasibilityMatrix, error) {
	m := &FeasibilityMatrix{turnCount: len(rows)}
	if len(rows) == 0 {
		return m, nil
	}
	m.standCount = len(rows[0])
	m.cells = make([]bool, 0, m.turnCount*m.standCount)
	for i, row := range rows {
		if len(row) != m.standCount {
			return nil, fmt.Errorf("矩阵第 %d 行长度 %d 与首行 %d 不一致", i, len(row), m.standCount)
		}
		m.cells = append(m.cells, row...)
	}
	return m, nil
}

// Set 设置单元格
func (m *FeasibilityMatrix) Set(turnIdx, standIdx int, feasible bool) {
	m.cells[turnIdx*m.standCount+standIdx] = feasible
}

// Feasible 查询过站是否允许停放指定机位
func (m *FeasibilityMatrix) Feasible(turnIdx, standIdx int) bool {
	return m.cells[turnIdx*m.standCount+standIdx]
}

// Dims 返回矩阵维度 (过站数, 停机位数)
func (m *FeasibilityMatrix) Dims() (int, int) {
	return m.turnCount, m.standCount
}

// CheckDims 校验矩阵维度与过站/停机位数量一致
func (m *FeasibilityMatrix) CheckDims(turnCount, standCount int) error {
	if m.turnCount != turnCount || m.standCount != standCount {
		return fmt.Errorf("矩阵维度 %dx%d 与输入 %dx%d 不一致",
			m.turnCount, m.standCount, turnCount, standCount)
	}
	return nil
}
