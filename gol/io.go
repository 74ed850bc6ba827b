package gol

import (
	"bufio"
	"io"
)

// WriteBoard prints the board row by row, 'x' for alive and ' ' for dead.
func WriteBoard(w io.Writer, t Torus, b Board) error {
	buffer := bufio.NewWriter(w)
	for p, cell := range b {
		if cell == Alive {
			buffer.WriteByte('x')
		} else {
			buffer.WriteByte(' ')
		}
		if (p+1)%t.Cols == 0 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Flush()
}
