package gol

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Timing is the coordinator's wall-clock report for one run.
type Timing struct {
	Elapsed    time.Duration // whole simulate loop
	TickMean   time.Duration
	TickStdDev time.Duration
}

// stopwatch records the duration of every tick of a run.
type stopwatch struct {
	start    time.Time
	lastTick time.Time
	ticks    []float64 // seconds
}

func startStopwatch(ticks int) *stopwatch {
	now := time.Now()
	return &stopwatch{
		start:    now,
		lastTick: now,
		ticks:    make([]float64, 0, ticks),
	}
}

func (s *stopwatch) lap() {
	now := time.Now()
	s.ticks = append(s.ticks, now.Sub(s.lastTick).Seconds())
	s.lastTick = now
}

func (s *stopwatch) stop() Timing {
	timing := Timing{Elapsed: time.Since(s.start)}
	if len(s.ticks) == 0 {
		return timing
	}
	mean, std := stat.MeanStdDev(s.ticks, nil)
	timing.TickMean = seconds(mean)
	if len(s.ticks) > 1 {
		timing.TickStdDev = seconds(std)
	}
	return timing
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
