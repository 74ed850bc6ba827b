package gol

import (
	"math/rand"

	"github.com/bscheibe/Parallel-game-of-life/util"
)

// glider cells as (column, row); the pattern travels down and to the right.
var glider = []util.Cell{
	{X: 2, Y: 1},
	{X: 2, Y: 2},
	{X: 2, Y: 3},
	{X: 1, Y: 3},
	{X: 0, Y: 2},
}

// InitGlider sets the glider cells alive. On grids smaller than 4x3 the
// pattern wraps around the torus.
func InitGlider(t Torus, b Board) {
	for _, cell := range glider {
		b[t.Index(cell.Y, cell.X)] = Alive
	}
}

// InitRandom makes each cell alive with probability 1/2. The same seed
// always produces the same board.
func InitRandom(b Board, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for i := range b {
		if r.Intn(2) == 1 {
			b[i] = Alive
		} else {
			b[i] = Dead
		}
	}
}
