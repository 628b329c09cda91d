package chain

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tcfw/stakesim/pkg/tx"
)

// Digest is a content identifier over a block's fields. Two blocks with the
// same field values produce the same digest on every node.
type Digest = cid.Cid

// Block is one unit of the chain. All fields are set at construction and
// never mutated afterwards; a corrected block is a new Block.
type Block struct {
	Index    uint64
	Time     int64
	Txs      []tx.Tx
	Proposer string
	Parent   Digest
	Hash     Digest
}

// headerView is the digest preimage: every block field except the stored
// hash itself, in a fixed msgpack layout.
type headerView struct {
	Index    uint64  `msgpack:"i"`
	Time     int64   `msgpack:"t"`
	Txs      []tx.Tx `msgpack:"x"`
	Proposer string  `msgpack:"w"`
	Parent   string  `msgpack:"p"`
}

// NewBlock builds a block over the given parent and computes its digest.
// The transaction batch is copied so the caller cannot alias block contents.
func NewBlock(index uint64, now int64, txs []tx.Tx, proposer string, parent Digest) (*Block, error) {
	b := &Block{
		Index:    index,
		Time:     now,
		Txs:      append([]tx.Tx(nil), txs...),
		Proposer: proposer,
		Parent:   parent,
	}

	h, err := computeDigest(b)
	if err != nil {
		return nil, err
	}
	b.Hash = h

	return b, nil
}

func computeDigest(b *Block) (Digest, error) {
	d, err := msgpack.Marshal(&headerView{
		Index:    b.Index,
		Time:     b.Time,
		Txs:      b.Txs,
		Proposer: b.Proposer,
		Parent:   b.Parent.String(),
	})
	if err != nil {
		return cid.Undef, errors.Wrap(err, "marshaling block header")
	}

	h, err := multihash.Sum(d, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "hashing block header")
	}

	return cid.NewCidV1(cid.Raw, h), nil
}
