package gol

import (
	"errors"
	"fmt"
)

var ErrUnexpectedRows = errors.New("unexpected rows from worker")

type coordinator struct {
	torus  Torus
	ranges []RowRange // ranges[0] is the coordinator's own
	peers  Peers
	events chan<- Event
	boards bool // Send BoardDistributed every tick
}

func (c *coordinator) send(event Event) {
	if c.events != nil {
		c.events <- event
	}
}

func (c *coordinator) state(tick int, state State) {
	c.send(StateChange{tick, state})
}

// Simulate runs ticks ticks from initial, with the calling goroutine acting as
// the coordinator for ranges[0] and peers computing ranges[1:] in order.
// It returns the final board and the coordinator's timing.
// events may be nil; it is not closed.
func Simulate(t Torus, ranges []RowRange, initial Board, ticks int, peers Peers, events chan<- Event) (Board, Timing, error) {
	return simulate(t, ranges, initial, ticks, peers, events, true)
}

// simulate skips the per-tick board copy unless boards is set.
func simulate(t Torus, ranges []RowRange, initial Board, ticks int, peers Peers, events chan<- Event, boards bool) (Board, Timing, error) {

	if len(initial) != t.Size() {
		return nil, Timing{}, fmt.Errorf("initial board has %d cells, want %d", len(initial), t.Size())
	}
	if ticks < 0 {
		return nil, Timing{}, fmt.Errorf("%w: ticks %d", ErrBadParameter, ticks)
	}
	if err := checkCover(t, ranges); err != nil {
		return nil, Timing{}, err
	}
	if len(ranges)-1 != peers.Size() {
		return nil, Timing{}, fmt.Errorf("%d row ranges for %d peers", len(ranges), peers.Size())
	}

	c := &coordinator{
		torus:  t,
		ranges: ranges,
		peers:  peers,
		events: events,
		boards: boards,
	}
	gen := NewGeneration(t, initial)
	watch := startStopwatch(ticks)

	for gen.Tick() != ticks {
		tick := gen.Tick()
		c.state(tick, Idle)

		// Every peer gets the full board
		c.state(tick, Distributing)
		if err := peers.Broadcast(tick, gen.Current()); err != nil {
			return nil, Timing{}, fmt.Errorf("broadcast tick %d: %w", tick, err)
		}
		if c.events != nil && c.boards {
			c.send(BoardDistributed{tick, gen.Current().Clone()})
		}

		// Own rows, while the peers work on theirs
		c.state(tick, Computing)
		UpdateRows(t, gen.Current(), gen.Next(), ranges[0])

		c.state(tick, Collecting)
		if err := c.collect(tick, gen.Next()); err != nil {
			return nil, Timing{}, err
		}

		gen.Swap()
		watch.lap()
		c.state(tick, Swapped)
		c.send(TickComplete{gen.Tick(), gen.Current().CountAlive()})
	}

	timing := watch.stop()
	final := gen.Current().Clone()
	c.state(gen.Tick(), Terminated)
	c.send(FinalTickComplete{gen.Tick(), final, timing})
	return final, timing, nil
}

// checkCover accepts ranges only if they tile [0, t.Rows) in order.
func checkCover(t Torus, ranges []RowRange) error {
	next := 0
	for _, r := range ranges {
		if r.Start != next || r.Count < 1 {
			return fmt.Errorf("%w: rows [%d,%d) after row %d", ErrBadParameter, r.Start, r.End(), next)
		}
		next = r.End()
	}
	if next != t.Rows {
		return fmt.Errorf("%w: ranges cover %d of %d rows", ErrBadParameter, next, t.Rows)
	}
	return nil
}

// collect receives one result from every peer, in any order, and copies each
// into next at its own offset.
func (c *coordinator) collect(tick int, next Board) error {
	pending := make(map[RowRange]bool, c.peers.Size())
	for _, r := range c.ranges[1:] {
		pending[r] = true
	}

	for i := 0; i != c.peers.Size(); i++ {
		rows, err := c.peers.Collect()
		if err != nil {
			return fmt.Errorf("collect tick %d: %w", tick, err)
		}
		if rows.Tick != tick || !pending[rows.Range] || len(rows.Cells) != rows.Range.Count*c.torus.Cols {
			return fmt.Errorf("%w: tick %d rows [%d,%d) with %d cells during tick %d",
				ErrUnexpectedRows, rows.Tick, rows.Range.Start, rows.Range.End(), len(rows.Cells), tick)
		}
		delete(pending, rows.Range)
		copy(rows.Range.Cells(c.torus, next), rows.Cells)
	}
	return nil
}
