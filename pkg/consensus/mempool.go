package consensus

import (
	"container/heap"
	"sync"

	"github.com/tcfw/stakesim/pkg/tx"
)

type txHeap []*tx.Tx

func (h txHeap) Len() int           { return len(h) }
func (h txHeap) Less(i, j int) bool { return h[i].Ts < h[j].Ts }
func (h txHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *txHeap) Push(x interface{}) {
	*h = append(*h, x.(*tx.Tx))
}

func (h *txHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Mempool is a validator's local holding area for unconfirmed transactions,
// drained oldest-first. Each mempool is owned by exactly one validator.
type Mempool struct {
	mu sync.Mutex
	h  txHeap
}

func NewMempool() *Mempool {
	m := &Mempool{h: make(txHeap, 0)}
	heap.Init(&m.h)

	return m
}

func (m *Mempool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.h)
}

func (m *Mempool) Add(t *tx.Tx) {
	m.mu.Lock()
	defer m.mu.Unlock()

	heap.Push(&m.h, t)
}

// Drain removes and returns up to max transactions, oldest first. Whatever
// is not taken stays pending for a later round.
func (m *Mempool) Drain(max int) []tx.Tx {
	m.mu.Lock()
	defer m.mu.Unlock()

	if max > len(m.h) {
		max = len(m.h)
	}

	out := make([]tx.Tx, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, *heap.Pop(&m.h).(*tx.Tx))
	}

	return out
}
