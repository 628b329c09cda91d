package consensus

import (
	"math/rand"

	"github.com/pkg/errors"
)

type Option func(*Coordinator) error

// WithValidators sets the fixed validator set for the run.
func WithValidators(vals ...*Validator) Option {
	return func(c *Coordinator) error {
		c.validators = vals
		return nil
	}
}

// WithRandSource sets the random source used by leader election. Fixing the
// seed makes a whole run reproducible.
func WithRandSource(r *rand.Rand) Option {
	return func(c *Coordinator) error {
		c.rand = r
		return nil
	}
}

// WithObserver subscribes an observer to the core's events.
func WithObserver(o Observer) Option {
	return func(c *Coordinator) error {
		c.obs = o
		return nil
	}
}

// WithMaxBlockTx caps how many transactions a proposer drains per block.
func WithMaxBlockTx(n int) Option {
	return func(c *Coordinator) error {
		if n <= 0 {
			return errors.New("max block tx must be positive")
		}
		c.maxBlockTx = n
		return nil
	}
}

// WithClock sets the timestamp source for proposed blocks.
func WithClock(clock func() int64) Option {
	return func(c *Coordinator) error {
		c.clock = clock
		return nil
	}
}
