package gol

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

var ErrBadParameter = errors.New("invalid parameter")

// Params provides the details of how to run the Game of Life and how to seed it.
type Params struct {
	Seed    int64 // Random seed
	Rows    int
	Cols    int
	Ticks   int
	Output  int  // 0 silent, 1 final board, 2 or more every tick
	Random  bool // Uniform random seed instead of a glider
	Workers int  // Local workers, coordinator included

	Nodes     []string // Remote worker nodes; P is 1+len(Nodes) when set
	KillNodes bool     // Shut remote nodes down after the run

	View bool // A viewer draws every tick's board
}

// DefaultParams are used for every positional parameter that is not given.
func DefaultParams() Params {
	return Params{
		Seed:    0,
		Rows:    10,
		Cols:    10,
		Ticks:   10,
		Output:  1,
		Workers: 1,
	}
}

// ParseArgs reads the positional parameters
//
//	seed rows cols ticks output init
//
// into p. Missing trailing parameters keep their current values; a nonzero
// init selects the random seed.
func ParseArgs(args []string, p *Params) error {
	ints := []struct {
		name string
		dest *int
	}{
		{"rows", &p.Rows},
		{"cols", &p.Cols},
		{"ticks", &p.Ticks},
		{"output", &p.Output},
	}

	if len(args) > 0 {
		seed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed %q", ErrBadParameter, args[0])
		}
		p.Seed = seed
	}
	for i, field := range ints {
		if len(args) <= i+1 {
			return nil
		}
		value, err := strconv.Atoi(args[i+1])
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrBadParameter, field.name, args[i+1])
		}
		*field.dest = value
	}
	if len(args) > 5 {
		selector, err := strconv.Atoi(args[5])
		if err != nil {
			return fmt.Errorf("%w: init %q", ErrBadParameter, args[5])
		}
		p.Random = selector != 0
	}
	return nil
}

// WorkerCount is P, the number of cooperating workers including the coordinator.
func (p Params) WorkerCount() int {
	if len(p.Nodes) > 0 {
		return 1 + len(p.Nodes)
	}
	return p.Workers
}

// Validate reports configuration errors that make the run impossible.
func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrBadParameter, p.Rows, p.Cols)
	}
	if p.Ticks < 0 {
		return fmt.Errorf("%w: ticks %d", ErrBadParameter, p.Ticks)
	}
	_, err := Partition(p.Rows, p.WorkerCount())
	return err
}

// Run seeds the board, starts the workers and simulates p.Ticks ticks.
// Progress is reported on events, which is closed before Run returns.
func Run(p Params, events chan<- Event) error {

	if events != nil {
		// Close the channel to stop the consumer gracefully.
		defer close(events)
	}

	if err := p.Validate(); err != nil {
		return err
	}
	t := Torus{Rows: p.Rows, Cols: p.Cols}
	ranges, err := Partition(p.Rows, p.WorkerCount())
	if err != nil {
		return err
	}

	board := t.NewBoard()
	if p.Random {
		InitRandom(board, p.Seed)
	} else {
		InitGlider(t, board)
	}

	var peers Peers
	var remote *RemotePeers
	if len(p.Nodes) > 0 {
		remote, err = DialPeers(t, p.Nodes, ranges[1:])
		if err != nil {
			return err
		}
		peers = remote
	} else {
		peers = StartLocalPeers(t, ranges[1:])
	}
	defer func() {
		if remote != nil && p.KillNodes {
			if err := remote.Kill(); err != nil {
				log.Printf("Killing workers: %v", err)
			}
		}
		if err := peers.Close(); err != nil {
			log.Printf("Closing workers: %v", err)
		}
	}()

	log.Printf("Run: %dx%dx%d with %d workers", p.Rows, p.Cols, p.Ticks, len(ranges))
	_, _, err = simulate(t, ranges, board, p.Ticks, peers, events, p.Output >= 2 || p.View)
	return err
}
