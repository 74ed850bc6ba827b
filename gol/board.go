package gol

import "github.com/bscheibe/Parallel-game-of-life/util"

// Cell is the state of one position on the board.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Board is a flat row-major slice of Rows*Cols cells.
// Its length is fixed when it is allocated.
type Board []Cell

// Clone returns a copy that shares no memory with b.
func (b Board) Clone() Board {
	copied := make(Board, len(b))
	copy(copied, b)
	return copied
}

// Equal reports whether both boards hold the same cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// CountAlive returns the number of alive cells.
func (b Board) CountAlive() int {
	count := 0
	for _, cell := range b {
		if cell == Alive {
			count++
		}
	}
	return count
}

// AliveCells lists the coordinates of every alive cell in row-major order.
func AliveCells(t Torus, b Board) []util.Cell {
	cells := make([]util.Cell, 0, b.CountAlive())
	for p, cell := range b {
		if cell == Alive {
			cells = append(cells, util.Cell{X: t.Col(p), Y: t.Row(p)})
		}
	}
	return cells
}
