package gol

import (
	"errors"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		want Params
	}{
		{nil, DefaultParams()},
		{[]string{"7"}, Params{Seed: 7, Rows: 10, Cols: 10, Ticks: 10, Output: 1, Workers: 1}},
		{[]string{"3", "20", "30"}, Params{Seed: 3, Rows: 20, Cols: 30, Ticks: 10, Output: 1, Workers: 1}},
		{[]string{"1", "64", "32", "100", "0", "1"}, Params{Seed: 1, Rows: 64, Cols: 32, Ticks: 100, Output: 0, Random: true, Workers: 1}},
		{[]string{"1", "5", "5", "5", "2", "0"}, Params{Seed: 1, Rows: 5, Cols: 5, Ticks: 5, Output: 2, Workers: 1}},
	}
	for _, test := range tests {
		p := DefaultParams()
		if err := ParseArgs(test.args, &p); err != nil {
			t.Fatalf("ParseArgs(%q): %v", test.args, err)
		}
		if p.Seed != test.want.Seed || p.Rows != test.want.Rows || p.Cols != test.want.Cols ||
			p.Ticks != test.want.Ticks || p.Output != test.want.Output || p.Random != test.want.Random {
			t.Errorf("ParseArgs(%q) = %+v, want %+v", test.args, p, test.want)
		}
	}
}

func TestParseArgsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"x"},
		{"0", "ten"},
		{"0", "10", "10", "1.5"},
		{"0", "10", "10", "10", "1", "random"},
	} {
		p := DefaultParams()
		if err := ParseArgs(args, &p); !errors.Is(err, ErrBadParameter) {
			t.Errorf("ParseArgs(%q) error %v, want ErrBadParameter", args, err)
		}
	}
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	p = DefaultParams()
	p.Rows = 0
	if err := p.Validate(); !errors.Is(err, ErrBadParameter) {
		t.Errorf("zero rows: %v", err)
	}

	p = DefaultParams()
	p.Ticks = -1
	if err := p.Validate(); !errors.Is(err, ErrBadParameter) {
		t.Errorf("negative ticks: %v", err)
	}

	p = DefaultParams()
	p.Workers = 11
	if err := p.Validate(); !errors.Is(err, ErrTooManyWorkers) {
		t.Errorf("11 workers on 10 rows: %v", err)
	}

	p = DefaultParams()
	p.Workers = 0
	if err := p.Validate(); !errors.Is(err, ErrNoWorkers) {
		t.Errorf("no workers: %v", err)
	}

	p = DefaultParams()
	p.Rows = 2
	p.Nodes = []string{"a:1", "b:2"}
	if err := p.Validate(); !errors.Is(err, ErrTooManyWorkers) {
		t.Errorf("three ranks on two rows: %v", err)
	}
}

func TestRunGlider(t *testing.T) {
	p := DefaultParams()
	p.Workers = 3

	events := make(chan Event, 1000)
	if err := Run(p, events); err != nil {
		t.Fatal(err)
	}

	torus := Torus{Rows: p.Rows, Cols: p.Cols}
	initial := torus.NewBoard()
	InitGlider(torus, initial)
	want := sequentialRun(torus, initial, p.Ticks)

	var final *FinalTickComplete
	for event := range events {
		if e, ok := event.(FinalTickComplete); ok {
			final = &e
		}
	}
	if final == nil {
		t.Fatal("no FinalTickComplete event")
	}
	if final.CompletedTicks != p.Ticks {
		t.Fatalf("final tick %d, want %d", final.CompletedTicks, p.Ticks)
	}
	assertBoard(t, torus, final.Board, want)
}

func TestRunClosesEventsOnError(t *testing.T) {
	p := DefaultParams()
	p.Rows = -1
	events := make(chan Event, 1)
	if err := Run(p, events); err == nil {
		t.Fatal("invalid board accepted")
	}
	if _, open := <-events; open {
		t.Fatal("events left open")
	}
}

func TestRunSendsBoardsOnlyWhenShown(t *testing.T) {
	tests := []struct {
		output int
		view   bool
		want   int
	}{
		{0, false, 0},
		{1, false, 0},
		{2, false, 10},
		{1, true, 10},
	}
	for _, test := range tests {
		p := DefaultParams()
		p.Output = test.output
		p.View = test.view

		events := make(chan Event, 1000)
		if err := Run(p, events); err != nil {
			t.Fatal(err)
		}
		boards := 0
		for event := range events {
			if _, ok := event.(BoardDistributed); ok {
				boards++
			}
		}
		if boards != test.want {
			t.Errorf("output %d view %v: %d boards sent, want %d", test.output, test.view, boards, test.want)
		}
	}
}
