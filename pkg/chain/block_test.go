package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcfw/stakesim/pkg/tx"
)

func testTxs(t *testing.T) []tx.Tx {
	t.Helper()

	t1, err := tx.New("alice", "bob", 1.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := tx.New("bob", "carol", 0.25, 11)
	if err != nil {
		t.Fatal(err)
	}

	return []tx.Tx{*t1, *t2}
}

func TestDigestDeterminism(t *testing.T) {
	txs := testTxs(t)

	a, err := NewBlock(1, 42, txs, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewBlock(1, 42, txs, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, a.Hash.Equals(b.Hash))
}

func TestDigestFieldSensitivity(t *testing.T) {
	txs := testTxs(t)

	base, err := NewBlock(1, 42, txs, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}

	amended := testTxs(t)
	amended[0].Amount = 2.5
	byAmount, err := NewBlock(1, 42, amended, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, base.Hash.Equals(byAmount.Hash))

	byProposer, err := NewBlock(1, 42, txs, "validator-1", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, base.Hash.Equals(byProposer.Hash))

	byParent, err := NewBlock(1, 42, txs, "validator-0", Genesis().Hash)
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, base.Hash.Equals(byParent.Hash))
}

func TestGenesisFixed(t *testing.T) {
	a := Genesis()
	b := Genesis()

	assert.Equal(t, uint64(0), a.Index)
	assert.Equal(t, GenesisProposer, a.Proposer)
	assert.Empty(t, a.Txs)
	assert.True(t, a.Parent.Equals(SentinelParent()))
	assert.True(t, a.Hash.Equals(b.Hash))
}

func TestNewBlockCopiesBatch(t *testing.T) {
	txs := testTxs(t)

	b, err := NewBlock(1, 42, txs, "validator-0", SentinelParent())
	if err != nil {
		t.Fatal(err)
	}

	txs[0].Amount = 99

	assert.Equal(t, 1.5, b.Txs[0].Amount)
}
