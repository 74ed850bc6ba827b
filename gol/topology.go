package gol

// Torus holds the fixed dimensions of the board.
// Every neighbour lookup wraps around both edges, so no index ever falls
// outside [0, Rows*Cols).
type Torus struct {
	Rows int
	Cols int
}

// Size is the number of cells on the board.
func (t Torus) Size() int {
	return t.Rows * t.Cols
}

// NewBoard allocates a board with every cell dead.
func (t Torus) NewBoard() Board {
	return make(Board, t.Size())
}

// Index maps a (row, column) pair to its linear position.
// Coordinates outside the grid are wrapped onto it.
func (t Torus) Index(row, col int) int {
	row = ((row % t.Rows) + t.Rows) % t.Rows
	col = ((col % t.Cols) + t.Cols) % t.Cols
	return row*t.Cols + col
}

func (t Torus) Row(p int) int {
	return p / t.Cols
}

func (t Torus) Col(p int) int {
	return p % t.Cols
}

// Left is the cell one column to the left, wrapping to the last column.
func (t Torus) Left(p int) int {
	if t.Col(p) == 0 {
		return p + t.Cols - 1
	}
	return p - 1
}

// Right is the cell one column to the right, wrapping to column 0.
func (t Torus) Right(p int) int {
	if t.Col(p) == t.Cols-1 {
		return p - t.Cols + 1
	}
	return p + 1
}

// Top is the cell one row up, wrapping to the last row.
func (t Torus) Top(p int) int {
	if t.Row(p) == 0 {
		return t.Col(p) + (t.Rows-1)*t.Cols
	}
	return p - t.Cols
}

// Bottom is the cell one row down, wrapping to row 0.
func (t Torus) Bottom(p int) int {
	if t.Row(p) == t.Rows-1 {
		return t.Col(p)
	}
	return p + t.Cols
}

func (t Torus) TopLeft(p int) int     { return t.Left(t.Top(p)) }
func (t Torus) TopRight(p int) int    { return t.Right(t.Top(p)) }
func (t Torus) BottomLeft(p int) int  { return t.Left(t.Bottom(p)) }
func (t Torus) BottomRight(p int) int { return t.Right(t.Bottom(p)) }

// Get positions of eight surrounding cells
func (t Torus) Neighbours(p int) [8]int {
	top := t.Top(p)
	bottom := t.Bottom(p)
	return [8]int{
		t.Left(top), top, t.Right(top),
		t.Left(p), t.Right(p),
		t.Left(bottom), bottom, t.Right(bottom),
	}
}
