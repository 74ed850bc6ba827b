package gol

import (
	"fmt"
	"time"
)

// Event represents any Game of Life event that the coordinator reports.
type Event interface {
	fmt.Stringer
	GetCompletedTicks() int
}

// State represents a phase of the per-tick synchronization protocol.
type State int

// This is a way of creating enums in Go.
const (
	Idle State = iota
	Distributing
	Computing
	Collecting
	Swapped
	Terminated
)

// String methods allow the different types of Events and States to be printed.
func (state State) String() string {
	switch state {
	case Idle:
		return "Idle"
	case Distributing:
		return "Distributing"
	case Computing:
		return "Computing"
	case Collecting:
		return "Collecting"
	case Swapped:
		return "Swapped"
	case Terminated:
		return "Terminated"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent every time the coordinator enters a new protocol phase.
type StateChange struct {
	CompletedTicks int
	NewState       State
}

// BoardDistributed carries a copy of the board broadcast at the start of a tick.
type BoardDistributed struct {
	CompletedTicks int
	Board          Board
}

// TickComplete is sent after the buffers have been swapped.
type TickComplete struct {
	CompletedTicks int
	AliveCount     int
}

// FinalTickComplete is sent once, after the last tick, with the final board
// and the coordinator's timing.
type FinalTickComplete struct {
	CompletedTicks int
	Board          Board
	Timing         Timing
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTicks() int {
	return event.CompletedTicks
}

func (event BoardDistributed) String() string {
	return fmt.Sprintf("Board at tick %d", event.CompletedTicks)
}

func (event BoardDistributed) GetCompletedTicks() int {
	return event.CompletedTicks
}

func (event TickComplete) String() string {
	return fmt.Sprintf("Alive Cells %d", event.AliveCount)
}

func (event TickComplete) GetCompletedTicks() int {
	return event.CompletedTicks
}

func (event FinalTickComplete) String() string {
	return fmt.Sprintf("Final tick %d in %v", event.CompletedTicks, event.Timing.Elapsed.Round(time.Microsecond))
}

func (event FinalTickComplete) GetCompletedTicks() int {
	return event.CompletedTicks
}
