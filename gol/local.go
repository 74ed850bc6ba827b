package gol

import "sync"

type broadcast struct {
	tick  int
	board Board
}

// LocalPeers runs every peer as a goroutine with its own generation pair.
// Boards travel to the peers on one inbox each and results come back on a
// shared channel in completion order.
type LocalPeers struct {
	inboxes []chan broadcast
	results chan Rows
	wg      sync.WaitGroup
}

// StartLocalPeers starts one goroutine per range.
func StartLocalPeers(t Torus, ranges []RowRange) *LocalPeers {
	peers := &LocalPeers{
		inboxes: make([]chan broadcast, len(ranges)),
		results: make(chan Rows, len(ranges)),
	}
	for i, r := range ranges {
		peers.inboxes[i] = make(chan broadcast, 1)
		peers.wg.Add(1)
		go peers.run(newWorker(t, r), peers.inboxes[i])
	}
	return peers
}

func (peers *LocalPeers) run(w *worker, inbox <-chan broadcast) {
	defer peers.wg.Done()
	for message := range inbox {
		peers.results <- w.step(message.tick, message.board)
	}
}

func (peers *LocalPeers) Size() int {
	return len(peers.inboxes)
}

func (peers *LocalPeers) Broadcast(tick int, board Board) error {
	for _, inbox := range peers.inboxes {
		inbox <- broadcast{tick: tick, board: board}
	}
	return nil
}

func (peers *LocalPeers) Collect() (Rows, error) {
	return <-peers.results, nil
}

// Close stops the goroutines and waits for them to exit.
func (peers *LocalPeers) Close() error {
	for _, inbox := range peers.inboxes {
		close(inbox)
	}
	peers.wg.Wait()
	return nil
}
