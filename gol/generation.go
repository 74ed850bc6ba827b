package gol

// Generation owns the two boards of a double-buffered simulation.
// Tick i reads board i%2 and writes board (i+1)%2; Swap flips which one is
// current without copying.
type Generation struct {
	boards  [2]Board
	current int
	tick    int
}

// NewGeneration allocates both buffers and copies initial into the current
// one. initial must be t.Size() cells long.
func NewGeneration(t Torus, initial Board) *Generation {
	g := &Generation{
		boards: [2]Board{t.NewBoard(), t.NewBoard()},
	}
	copy(g.boards[0], initial)
	return g
}

// Read from this board
func (g *Generation) Current() Board {
	return g.boards[g.current]
}

// Write to this board
func (g *Generation) Next() Board {
	return g.boards[1-g.current]
}

// Swap makes the next board current and counts the tick.
func (g *Generation) Swap() {
	g.current = 1 - g.current
	g.tick++
}

// Tick is the number of swaps so far.
func (g *Generation) Tick() int {
	return g.tick
}
