package chain

import "github.com/pkg/errors"

var (
	// ErrTampered marks a block whose stored hash does not match its contents.
	ErrTampered = errors.New("block hash does not match block contents")

	// ErrStaleOrForked marks a block that does not extend the local tip.
	ErrStaleOrForked = errors.New("block does not extend the local chain tip")
)
