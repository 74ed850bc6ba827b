package gol

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed cell data")

// Compress cells into a bitmap, bit i%8 of byte i/8 set when cell i is alive
func packCells(cells []Cell) []byte {
	packed := make([]byte, (len(cells)+7)/8)
	for i, cell := range cells {
		if cell == Alive {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed
}

// Decompress n cells from a bitmap produced by packCells
func unpackCells(data []byte, n int) ([]Cell, error) {
	if len(data) != (n+7)/8 {
		return nil, fmt.Errorf("%w: %d bytes for %d cells", ErrMalformed, len(data), n)
	}
	cells := make([]Cell, n)
	for i := range cells {
		if data[i/8]&(1<<(i%8)) != 0 {
			cells[i] = Alive
		}
	}
	return cells, nil
}
