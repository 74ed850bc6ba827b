// Definitions of types that are shared between the coordinator and workers

package gol

// Rows is the result of one worker's tick: its range of the next board.
type Rows struct {
	Tick  int
	Range RowRange
	Cells []Cell // Range.Count*Cols cells, row-major
}

// Peers is the coordinator's view of every worker except itself.
type Peers interface {
	// Size is the number of peers, P-1.
	Size() int
	// Broadcast hands the whole current board to every peer. It may return
	// before the peers have finished computing.
	Broadcast(tick int, board Board) error
	// Collect blocks until any one peer's rows for the current tick arrive.
	Collect() (Rows, error)
	Close() error
}

type InitArgs struct {
	Rows  int
	Cols  int
	Range RowRange // Assigned rows
}

type TickArgs struct {
	Tick  int
	Board []byte // Compressed whole board
}

type TickReply struct {
	Tick  int
	Range RowRange
	Cells []byte // Compressed cells of Range
}
