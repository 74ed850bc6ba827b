package sdl

import (
	"fmt"

	"github.com/bscheibe/Parallel-game-of-life/gol"
	"github.com/veandco/go-sdl2/sdl"
)

// Run draws every distributed board until events is closed, then keeps the
// final board on screen until the window is closed.
// It must be called from the main goroutine.
func Run(p gol.Params, events <-chan gol.Event) {
	t := gol.Torus{Rows: p.Rows, Cols: p.Cols}
	w := NewWindow(int32(p.Cols), int32(p.Rows))
	open := true

	draw := func(title string, board gol.Board) {
		for position, cell := range board {
			w.SetPixel(t.Col(position), t.Row(position), cell == gol.Alive)
		}
		w.SetTitle(title)
		w.RenderFrame()
	}

	// Keep draining after the window closes so the simulation never blocks
	for event := range events {
		if open && w.Closed() {
			w.Destroy()
			open = false
		}
		if !open {
			continue
		}
		switch e := event.(type) {
		case gol.BoardDistributed:
			draw(fmt.Sprintf("Tick %d", e.CompletedTicks), e.Board)
		case gol.FinalTickComplete:
			draw(fmt.Sprintf("Final tick %d", e.CompletedTicks), e.Board)
		}
	}

	if !open {
		return
	}
	for !w.Closed() {
		sdl.Delay(16)
	}
	w.Destroy()
}
