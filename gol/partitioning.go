package gol

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows         = errors.New("board has no rows")
	ErrNoWorkers      = errors.New("at least one worker is required")
	ErrTooManyWorkers = errors.New("more workers than rows")
)

// RowRange is the block of rows [Start, Start+Count) owned by one worker
type RowRange struct {
	Start int
	Count int
}

// End is the first row after the range (not inclusive)
func (r RowRange) End() int {
	return r.Start + r.Count
}

// Contains reports whether row lies inside the range.
func (r RowRange) Contains(row int) bool {
	return r.Start <= row && row < r.End()
}

// Cells returns the slice of b covering the rows in r.
// The result aliases b.
func (r RowRange) Cells(t Torus, b Board) []Cell {
	return b[r.Start*t.Cols : r.End()*t.Cols]
}

// Partition divides rows into one contiguous range per worker, ordered by
// worker index. When rows is not a multiple of workers the first
// rows%workers workers take one extra row each, so every row is owned by
// exactly one worker.
func Partition(rows, workers int) ([]RowRange, error) {
	if rows < 1 {
		return nil, ErrNoRows
	}
	if workers < 1 {
		return nil, ErrNoWorkers
	}
	if workers > rows {
		return nil, fmt.Errorf("%w: %d workers for %d rows", ErrTooManyWorkers, workers, rows)
	}

	base := rows / workers
	extra := rows % workers

	ranges := make([]RowRange, workers)
	start := 0
	for i := 0; i != workers; i++ {
		count := base
		if i < extra {
			count++
		}
		ranges[i] = RowRange{Start: start, Count: count}
		start += count
	}
	return ranges, nil
}
