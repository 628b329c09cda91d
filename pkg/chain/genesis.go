package chain

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// GenesisProposer tags the block no validator proposed.
const GenesisProposer = "genesis"

// SentinelParent is the fixed parent digest of the genesis block: the digest
// of the empty byte string.
func SentinelParent() Digest {
	h, err := multihash.Sum(nil, multihash.SHA2_256, -1)
	if err != nil {
		panic(err)
	}
	return cid.NewCidV1(cid.Raw, h)
}

// Genesis returns the universally agreed first block. Its fields are fixed
// constants, so every replica starts from an identical tip.
func Genesis() *Block {
	b, err := NewBlock(0, 0, nil, GenesisProposer, SentinelParent())
	if err != nil {
		// static inputs; cannot fail at runtime
		panic(err)
	}
	return b
}
