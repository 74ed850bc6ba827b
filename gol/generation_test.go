package gol

import "testing"

func TestGenerationParity(t *testing.T) {
	torus := Torus{Rows: 3, Cols: 3}
	initial := randomBoard(torus, 1)
	gen := NewGeneration(torus, initial)

	assertBoard(t, torus, gen.Current(), initial)
	first, second := &gen.Current()[0], &gen.Next()[0]
	if first == second {
		t.Fatalf("current and next alias the same board")
	}

	for tick := 0; tick < 5; tick++ {
		if gen.Tick() != tick {
			t.Fatalf("Tick() = %d, want %d", gen.Tick(), tick)
		}
		current, next := &gen.Current()[0], &gen.Next()[0]
		if tick%2 == 0 && (current != first || next != second) {
			t.Fatalf("tick %d does not read buffer 0", tick)
		}
		if tick%2 == 1 && (current != second || next != first) {
			t.Fatalf("tick %d does not read buffer 1", tick)
		}
		gen.Swap()
	}
}

func TestGenerationCopiesInitial(t *testing.T) {
	torus := Torus{Rows: 2, Cols: 2}
	initial := torus.NewBoard()
	gen := NewGeneration(torus, initial)
	initial[0] = Alive
	if gen.Current()[0] != Dead {
		t.Fatalf("generation shares memory with the initial board")
	}
}
