package consensus

import (
	"github.com/pkg/errors"

	"github.com/tcfw/stakesim/pkg/chain"
	"github.com/tcfw/stakesim/pkg/tx"
)

// Validator is a single staked participant. It owns its mempool and its own
// chain replica exclusively; nothing here is shared between validators. The
// stake is fixed for the lifetime of the run.
type Validator struct {
	Address string
	Stake   int64

	mempool *Mempool
	chain   *chain.Chain
}

func NewValidator(address string, stake int64) (*Validator, error) {
	if address == "" {
		return nil, errors.New("validator requires an address")
	}
	if stake < 0 {
		return nil, errors.New("stake must not be negative")
	}

	return &Validator{
		Address: address,
		Stake:   stake,
		mempool: NewMempool(),
		chain:   chain.New(),
	}, nil
}

// Submit places a pending transaction into this validator's mempool.
func (v *Validator) Submit(t *tx.Tx) {
	v.mempool.Add(t)
}

func (v *Validator) MempoolLen() int {
	return v.mempool.Len()
}

func (v *Validator) Chain() *chain.Chain {
	return v.chain
}

// Propose drains up to maxTx of the oldest pending transactions and builds a
// block extending the local tip. The block is not appended here: the proposer
// gets no shortcut and accepts its own output through the same Resolve path
// every receiver uses.
func (v *Validator) Propose(now int64, maxTx int) (*chain.Block, error) {
	txs := v.mempool.Drain(maxTx)
	if len(txs) == 0 {
		return nil, ErrNothingToPropose
	}

	tip := v.chain.Tip()

	b, err := chain.NewBlock(tip.Index+1, now, txs, v.Address, tip.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "building block")
	}

	return b, nil
}

// Resolve runs the validation state machine against the local replica. On
// acceptance the block becomes the new local tip; on rejection the replica
// is left untouched and the typed reason is returned.
func (v *Validator) Resolve(b *chain.Block) error {
	return v.chain.Extend(b)
}
