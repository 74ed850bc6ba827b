package gol

// EvolveCell computes the next state of the cell at p from the current board.
// A cell is alive next tick with exactly three alive neighbours, or with two
// if it is already alive.
func EvolveCell(t Torus, current Board, p int) Cell {
	count := 0
	for _, neighbour := range t.Neighbours(p) {
		count += int(current[neighbour])
	}
	if count == 3 || (count == 2 && current[p] == Alive) {
		return Alive
	}
	return Dead
}

// UpdateRow writes the next state of every cell in row into next.
// Only that row of next is touched and current is only read, so disjoint
// rows can be updated from different goroutines.
func UpdateRow(t Torus, current, next Board, row int) {
	position := t.Index(row, 0)
	end := position + t.Cols
	for ; position != end; position++ {
		next[position] = EvolveCell(t, current, position)
	}
}

// UpdateRows applies UpdateRow to every row of r.
func UpdateRows(t Torus, current, next Board, r RowRange) {
	for row := r.Start; row != r.End(); row++ {
		UpdateRow(t, current, next, row)
	}
}
