package gol

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/rpc"
)

// RemotePeers reaches worker nodes over net/rpc.
// Tick calls are issued asynchronously and share one completion channel,
// so Collect returns replies in whatever order the nodes finish.
type RemotePeers struct {
	torus   Torus
	addrs   []string
	clients []*rpc.Client
	calls   chan *rpc.Call
}

// DialPeers connects to one node per range and assigns each its range.
// addrs[i] receives ranges[i].
func DialPeers(t Torus, addrs []string, ranges []RowRange) (*RemotePeers, error) {
	if len(addrs) != len(ranges) {
		return nil, fmt.Errorf("%d worker nodes for %d row ranges", len(addrs), len(ranges))
	}

	peers := &RemotePeers{
		torus:   t,
		addrs:   addrs,
		clients: make([]*rpc.Client, 0, len(addrs)),
		calls:   make(chan *rpc.Call, len(addrs)),
	}
	for _, addr := range addrs {
		client, err := rpc.DialHTTP("tcp", addr)
		if err != nil {
			peers.Close()
			return nil, fmt.Errorf("dial worker %s: %w", addr, err)
		}
		log.Printf("Worker node %s connected", addr)
		peers.clients = append(peers.clients, client)
	}

	// Dispatch assignments
	for i, client := range peers.clients {
		args := InitArgs{Rows: t.Rows, Cols: t.Cols, Range: ranges[i]}
		client.Go("Worker.Init", args, new(struct{}), peers.calls)
	}

	// Check if all RPC calls succeeded
	var failed error
	for range peers.clients {
		call := <-peers.calls
		if call.Error != nil && failed == nil {
			failed = fmt.Errorf("init worker: %w", call.Error)
		}
	}
	if failed != nil {
		peers.Close()
		return nil, failed
	}
	return peers, nil
}

func (peers *RemotePeers) Size() int {
	return len(peers.clients)
}

// Broadcast compresses the board once and sends it to every node.
func (peers *RemotePeers) Broadcast(tick int, board Board) error {
	args := TickArgs{Tick: tick, Board: packCells(board)}
	for _, client := range peers.clients {
		client.Go("Worker.Tick", args, new(TickReply), peers.calls)
	}
	return nil
}

func (peers *RemotePeers) Collect() (Rows, error) {
	call := <-peers.calls
	if call.Error != nil {
		return Rows{}, fmt.Errorf("worker tick: %w", call.Error)
	}
	reply := call.Reply.(*TickReply)
	cells, err := unpackCells(reply.Cells, reply.Range.Count*peers.torus.Cols)
	if err != nil {
		return Rows{}, err
	}
	return Rows{Tick: reply.Tick, Range: reply.Range, Cells: cells}, nil
}

// Kill asks every node to exit.
func (peers *RemotePeers) Kill() error {
	var errs []error
	for i, client := range peers.clients {
		err := client.Call("Worker.Kill", struct{}{}, &struct{}{})
		if err != nil && !connectionDropped(err) {
			errs = append(errs, fmt.Errorf("kill %s: %w", peers.addrs[i], err))
		}
	}
	return errors.Join(errs...)
}

// connectionDropped reports whether err means the node closed the connection
// before replying, which is how a killed node may answer.
func connectionDropped(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, rpc.ErrShutdown)
}

func (peers *RemotePeers) Close() error {
	var errs []error
	for _, client := range peers.clients {
		errs = append(errs, client.Close())
	}
	return errors.Join(errs...)
}
