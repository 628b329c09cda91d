package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcfw/stakesim/pkg/tx"
)

func TestMempoolOldestFirst(t *testing.T) {
	m := NewMempool()

	m.Add(&tx.Tx{Ts: 2})
	m.Add(&tx.Tx{Ts: 1})
	m.Add(&tx.Tx{Ts: 3})

	assert.Equal(t, 3, m.Len())

	got := m.Drain(3)

	assert.Equal(t, int64(1), got[0].Ts)
	assert.Equal(t, int64(2), got[1].Ts)
	assert.Equal(t, int64(3), got[2].Ts)
}

func TestMempoolDrainLeavesRemainder(t *testing.T) {
	m := NewMempool()

	for i := int64(1); i <= 5; i++ {
		m.Add(&tx.Tx{Ts: i})
	}

	got := m.Drain(3)

	assert.Len(t, got, 3)
	assert.Equal(t, 2, m.Len())

	rest := m.Drain(10)

	assert.Len(t, rest, 2)
	assert.Equal(t, int64(4), rest[0].Ts)
	assert.Equal(t, int64(5), rest[1].Ts)
	assert.Equal(t, 0, m.Len())
}
