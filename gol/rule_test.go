package gol

import "testing"

func TestGliderOneTick(t *testing.T) {
	torus := Torus{Rows: 5, Cols: 5}
	board := torus.NewBoard()
	InitGlider(torus, board)

	initial := parseBoard(torus,
		"     ",
		"  x  ",
		"x x  ",
		" xx  ",
		"     ",
	)
	assertBoard(t, torus, board, initial)

	want := parseBoard(torus,
		"     ",
		" x   ",
		"  xx ",
		" xx  ",
		"     ",
	)
	next := torus.NewBoard()
	for row := 0; row < torus.Rows; row++ {
		UpdateRow(torus, board, next, row)
	}
	assertBoard(t, torus, next, want)
}

func TestIsolatedCellDies(t *testing.T) {
	torus := Torus{Rows: 5, Cols: 5}
	board := parseBoard(torus,
		"     ",
		"     ",
		"  x  ",
	)
	if got := EvolveCell(torus, board, torus.Index(2, 2)); got != Dead {
		t.Fatalf("isolated cell survived")
	}
	final := simulateLocal(t, torus, 1, board, 1)
	if final.CountAlive() != 0 {
		t.Fatalf("%d cells alive after one tick, want 0", final.CountAlive())
	}
}

func TestBlockIsStill(t *testing.T) {
	torus := Torus{Rows: 6, Cols: 6}
	block := parseBoard(torus,
		"      ",
		"      ",
		"  xx  ",
		"  xx  ",
	)
	for _, workers := range []int{1, 2, 3} {
		final := simulateLocal(t, torus, workers, block, 10)
		assertBoard(t, torus, final, block)
	}
}

func TestEvolveCellIsDeterministic(t *testing.T) {
	torus := Torus{Rows: 7, Cols: 9}
	board := randomBoard(torus, 42)
	snapshot := board.Clone()
	for p := 0; p < torus.Size(); p++ {
		first := EvolveCell(torus, board, p)
		second := EvolveCell(torus, board, p)
		if first != second {
			t.Fatalf("cell %d: %d then %d", p, first, second)
		}
	}
	assertBoard(t, torus, board, snapshot)
}

func TestEvolveCellRules(t *testing.T) {
	torus := Torus{Rows: 5, Cols: 5}
	centre := torus.Index(2, 2)
	tests := []struct {
		name  string
		board []string
		want  Cell
	}{
		{"birth with three", []string{"", " xx", " x"}, Alive},
		{"no birth with two", []string{"", " xx"}, Dead},
		{"survive with two", []string{"", " xx", "  x"}, Alive},
		{"survive with three", []string{"", " xxx", "  x"}, Alive},
		{"overcrowded", []string{"", " xxx", " xx"}, Dead},
		{"lonely", []string{"", " x", "  x"}, Dead},
	}
	for _, test := range tests {
		board := parseBoard(torus, test.board...)
		if got := EvolveCell(torus, board, centre); got != test.want {
			t.Errorf("%s: got %d want %d", test.name, got, test.want)
		}
	}
}

func TestUpdateRowTouchesOnlyItsRow(t *testing.T) {
	torus := Torus{Rows: 6, Cols: 5}
	current := randomBoard(torus, 7)
	snapshot := current.Clone()

	const sentinel Cell = 9
	next := torus.NewBoard()
	for i := range next {
		next[i] = sentinel
	}

	UpdateRow(torus, current, next, 3)

	assertBoard(t, torus, current, snapshot)
	want := sequentialStep(torus, current)
	for p, cell := range next {
		if torus.Row(p) == 3 {
			if cell != want[p] {
				t.Fatalf("cell %d: got %d want %d", p, cell, want[p])
			}
		} else if cell != sentinel {
			t.Fatalf("cell %d outside row 3 was written", p)
		}
	}
}

func TestUpdateRowsConcurrently(t *testing.T) {
	torus := Torus{Rows: 12, Cols: 9}
	current := randomBoard(torus, 3)
	next := torus.NewBoard()

	ranges, err := Partition(torus.Rows, 4)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	for _, r := range ranges {
		go func(r RowRange) {
			UpdateRows(torus, current, next, r)
			done <- struct{}{}
		}(r)
	}
	for range ranges {
		<-done
	}
	assertBoard(t, torus, next, sequentialStep(torus, current))
}
