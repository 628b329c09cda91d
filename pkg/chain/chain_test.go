package chain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcfw/stakesim/pkg/tx"
)

func extendOnce(t *testing.T, c *Chain, proposer string) *Block {
	t.Helper()

	tip := c.Tip()

	tr, err := tx.New("alice", "bob", 1, int64(tip.Index))
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewBlock(tip.Index+1, int64(tip.Index)+100, []tx.Tx{*tr}, proposer, tip.Hash)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Extend(b); err != nil {
		t.Fatal(err)
	}

	return b
}

func TestAppendInvariant(t *testing.T) {
	c := New()

	const k = 8
	for i := 0; i < k; i++ {
		extendOnce(t, c, fmt.Sprintf("validator-%d", i%3))
	}

	assert.Equal(t, k+1, c.Height())

	for i := 1; i < c.Height(); i++ {
		prev, cur := c.Block(i-1), c.Block(i)
		assert.True(t, cur.Parent.Equals(prev.Hash), "link broken at %d", i)
		assert.Equal(t, prev.Index+1, cur.Index, "index broken at %d", i)
	}
}

func TestExtendRejectsTampered(t *testing.T) {
	c := New()
	b := extendOnce(t, c, "validator-0")

	receiver := New()

	tampered := *b
	tampered.Proposer = "mallory"

	err := receiver.Extend(&tampered)

	assert.ErrorIs(t, err, ErrTampered)
	assert.Equal(t, 1, receiver.Height())
}

func TestExtendRejectsTamperedAmount(t *testing.T) {
	c := New()
	b := extendOnce(t, c, "validator-0")

	receiver := New()

	tampered := *b
	tampered.Txs = append([]tx.Tx(nil), b.Txs...)
	tampered.Txs[0].Amount += 1000

	err := receiver.Extend(&tampered)

	assert.ErrorIs(t, err, ErrTampered)
	assert.Equal(t, 1, receiver.Height())
}

func TestExtendRejectsStaleOrForked(t *testing.T) {
	c := New()

	// a well-formed block over the wrong parent
	forked, err := NewBlock(1, 42, nil, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}

	err = c.Extend(forked)

	assert.ErrorIs(t, err, ErrStaleOrForked)
	assert.Equal(t, 1, c.Height())
}

func TestExtendRejectsIndexSkip(t *testing.T) {
	c := New()

	skipped, err := NewBlock(2, 42, nil, "validator-0", c.Tip().Hash)
	if err != nil {
		t.Fatal(err)
	}

	err = c.Extend(skipped)

	assert.ErrorIs(t, err, ErrStaleOrForked)
	assert.Equal(t, 1, c.Height())
}

func TestRejectionIsTerminal(t *testing.T) {
	c := New()
	b := extendOnce(t, c, "validator-0")

	receiver := New()

	tampered := *b
	tampered.Time++

	assert.ErrorIs(t, receiver.Extend(&tampered), ErrTampered)

	// the untouched original still extends the replica
	assert.NoError(t, receiver.Extend(b))
	assert.Equal(t, 2, receiver.Height())
}
