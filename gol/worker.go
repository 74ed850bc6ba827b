package gol

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"sync"
)

var ErrNotInitialised = errors.New("tick before init")

// worker is the private state of one rank: its row range and its own copy
// of the generation pair.
type worker struct {
	torus Torus
	rows  RowRange
	gen   *Generation
}

func newWorker(t Torus, rows RowRange) *worker {
	return &worker{
		torus: t,
		rows:  rows,
		gen:   NewGeneration(t, nil),
	}
}

// step takes a private copy of the broadcast board, evolves the assigned
// rows into the next buffer and returns a copy of them.
func (w *worker) step(tick int, board Board) Rows {
	copy(w.gen.Current(), board)
	UpdateRows(w.torus, w.gen.Current(), w.gen.Next(), w.rows)

	computed := w.rows.Cells(w.torus, w.gen.Next())
	result := Rows{
		Tick:  tick,
		Range: w.rows,
		Cells: make([]Cell, len(computed)),
	}
	copy(result.Cells, computed)

	w.gen.Swap()
	return result
}

// Worker is the RPC service run by a worker node.
type Worker struct {
	mu     sync.Mutex
	state  *worker
	killed chan struct{}
	once   sync.Once
}

func NewWorker() *Worker {
	return &Worker{killed: make(chan struct{})}
}

// Init assigns the torus and row range. Any previous assignment is dropped.
func (w *Worker) Init(args InitArgs, reply *struct{}) error {

	log.Printf("Init: %dx%d rows [%d,%d)", args.Rows, args.Cols, args.Range.Start, args.Range.End())

	t := Torus{Rows: args.Rows, Cols: args.Cols}
	if t.Rows < 1 || t.Cols < 1 {
		return fmt.Errorf("init: invalid board %dx%d", t.Rows, t.Cols)
	}
	if args.Range.Count < 1 || args.Range.Start < 0 || args.Range.End() > t.Rows {
		return fmt.Errorf("init: rows [%d,%d) outside board of %d rows",
			args.Range.Start, args.Range.End(), t.Rows)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = newWorker(t, args.Range)
	return nil
}

// Tick evolves the assigned rows of the broadcast board.
func (w *Worker) Tick(args TickArgs, reply *TickReply) error {

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == nil {
		return ErrNotInitialised
	}

	board, err := unpackCells(args.Board, w.state.torus.Size())
	if err != nil {
		return err
	}

	rows := w.state.step(args.Tick, board)
	reply.Tick = rows.Tick
	reply.Range = rows.Range
	reply.Cells = packCells(rows.Cells)
	return nil
}

// Kill makes ServeWorker return. The node may exit before this reply is
// written, so callers see either success or a dropped connection.
func (w *Worker) Kill(struct{}, *struct{}) error {

	log.Print("Kill")
	w.once.Do(func() { close(w.killed) })
	return nil
}

// ServeWorker serves a fresh Worker over HTTP on listener.
// It returns nil after Worker.Kill, or the error that stopped the listener.
func ServeWorker(listener net.Listener) error {

	worker := NewWorker()

	// Private server so several nodes can live in one process
	server := rpc.NewServer()
	if err := server.Register(worker); err != nil {
		return err
	}

	errs := make(chan error, 1)
	go func() {
		errs <- http.Serve(listener, server)
	}()
	log.Printf("Worker listening on %s", listener.Addr())

	select {
	case <-worker.killed:
		listener.Close()
		return nil
	case err := <-errs:
		return err
	}
}
