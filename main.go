package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/bscheibe/Parallel-game-of-life/gol"
	"github.com/bscheibe/Parallel-game-of-life/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
//
// Positional parameters, all optional: seed rows cols ticks output init
func main() {
	runtime.LockOSThread()

	params := gol.DefaultParams()

	flag.IntVar(
		&params.Workers,
		"w",
		0,
		"Local workers including the coordinator. Defaults to GOMAXPROCS, capped at the row count.")

	nodes := flag.String(
		"workers",
		os.Getenv("GOL_WORKERS"),
		"Comma separated worker node addresses. Overrides -w.")

	flag.BoolVar(
		&params.KillNodes,
		"kill",
		false,
		"Shut the worker nodes down after the run.")

	window := flag.Bool(
		"sdl",
		false,
		"Show the board in an SDL window.")

	flag.Parse()

	if err := gol.ParseArgs(flag.Args(), &params); err != nil {
		log.Fatal(err)
	}
	if *nodes != "" {
		params.Nodes = strings.Split(*nodes, ",")
	}
	params.View = *window
	if params.Workers == 0 {
		params.Workers = min(runtime.GOMAXPROCS(0), params.Rows)
	}

	events := make(chan gol.Event, 1000)
	done := make(chan error, 1)
	go func() {
		done <- gol.Run(params, events)
	}()

	if *window {
		view := make(chan gol.Event, 1000)
		go func() {
			defer close(view)
			for event := range events {
				report(os.Stdout, params, event)
				view <- event
			}
		}()
		sdl.Run(params, view)
	} else {
		for event := range events {
			report(os.Stdout, params, event)
		}
	}

	if err := <-done; err != nil {
		log.Fatal(err)
	}
}

// report prints the boards the verbosity level asks for and the timing.
func report(w io.Writer, p gol.Params, event gol.Event) {
	t := gol.Torus{Rows: p.Rows, Cols: p.Cols}
	switch e := event.(type) {
	case gol.BoardDistributed:
		if p.Output >= 2 {
			fmt.Fprintf(w, "board at tick %d:\n", e.CompletedTicks)
			if err := gol.WriteBoard(w, t, e.Board); err != nil {
				log.Printf("Writing board: %v", err)
			}
		}
	case gol.FinalTickComplete:
		if p.Output >= 1 {
			fmt.Fprintln(w, "final board:")
			if err := gol.WriteBoard(w, t, e.Board); err != nil {
				log.Printf("Writing board: %v", err)
			}
		}
		fmt.Fprintf(w, "time at rank 0=%f \n", e.Timing.Elapsed.Seconds())
		fmt.Fprintf(w, "tick mean=%v stddev=%v\n", e.Timing.TickMean, e.Timing.TickStdDev)
	}
}
