package chain

import "github.com/pkg/errors"

// Chain is one participant's append-only replica. Replicas are never shared
// between validators; convergence across replicas is observed, not enforced.
type Chain struct {
	blocks []*Block
}

// New returns a replica holding only the genesis block.
func New() *Chain {
	return &Chain{blocks: []*Block{Genesis()}}
}

// Tip returns the last block, the point new blocks must extend.
func (c *Chain) Tip() *Block {
	return c.blocks[len(c.blocks)-1]
}

// Height returns the number of blocks including genesis.
func (c *Chain) Height() int {
	return len(c.blocks)
}

// Block returns the block at index i, or nil if out of range.
func (c *Chain) Block(i int) *Block {
	if i < 0 || i >= len(c.blocks) {
		return nil
	}
	return c.blocks[i]
}

// HashSequence returns the digests of every block in order. Two replicas
// converged on the same history iff their sequences are equal.
func (c *Chain) HashSequence() []Digest {
	seq := make([]Digest, len(c.blocks))
	for i, b := range c.blocks {
		seq[i] = b.Hash
	}
	return seq
}

// Extend runs the validation state machine over a candidate block:
//
//	RECEIVED -> HASH_CHECK -> LINK_CHECK -> accepted | rejected
//
// HASH_CHECK recomputes the digest from the block's fields and compares it to
// the stored hash; a mismatch rejects with ErrTampered. LINK_CHECK compares
// the block's parent digest and index to the local tip; a mismatch rejects
// with ErrStaleOrForked. Only an accepted block is appended. A rejection is
// terminal for this (replica, block) pair and leaves the chain untouched.
func (c *Chain) Extend(b *Block) error {
	want, err := computeDigest(b)
	if err != nil {
		return errors.Wrap(err, "recomputing block digest")
	}
	if !want.Equals(b.Hash) {
		return ErrTampered
	}

	tip := c.Tip()
	if !b.Parent.Equals(tip.Hash) || b.Index != tip.Index+1 {
		return ErrStaleOrForked
	}

	c.blocks = append(c.blocks, b)

	return nil
}
