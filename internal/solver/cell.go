package solver

import (
	"fmt"
	"slices"
)

// Cell is a (row, column) coordinate on the board grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

func compareCells(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func sortedCells(cells []Cell) []Cell {
	slices.SortFunc(cells, compareCells)
	return cells
}
