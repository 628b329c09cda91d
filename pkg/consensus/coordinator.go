package consensus

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tcfw/stakesim/pkg/tx"
)

// DefaultMaxBlockTx caps the transaction batch a proposer drains per block.
const DefaultMaxBlockTx = 5

// TxDelivery is one generated transaction plus the validators whose mempools
// should receive it. Transaction generation and recipient sampling live
// outside the core.
type TxDelivery struct {
	Tx         *tx.Tx
	Recipients []*Validator
}

// Coordinator drives consensus rounds over a fixed validator set. Rounds are
// strictly sequential: round k+1 never begins before every validator has
// resolved round k's block.
type Coordinator struct {
	validators []*Validator
	rand       *rand.Rand
	obs        Observer
	maxBlockTx int
	clock      func() int64
}

func NewCoordinator(opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		obs:        NopObserver{},
		maxBlockTx: DefaultMaxBlockTx,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:      func() int64 { return time.Now().UnixNano() },
	}

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	if len(c.validators) == 0 {
		return nil, ErrNoValidators
	}

	return c, nil
}

func (c *Coordinator) Validators() []*Validator {
	return c.validators
}

// RunRound drives one full cycle: deliver the supplied transactions into
// mempools, elect a leader by stake, have it propose a block, then broadcast
// that identical block to every validator, the proposer included.
//
// Election failure is fatal and returned. A leader with an empty mempool
// skips the round. Per-validator rejections are recorded through the
// observer and metrics and never fail the round.
func (c *Coordinator) RunRound(ctx context.Context, round uint64, deliveries []TxDelivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, d := range deliveries {
		for _, v := range d.Recipients {
			v.Submit(d.Tx)
			c.obs.TxReceived(v.Address, d.Tx)
		}
	}

	leader, err := Elect(c.validators, c.rand)
	if err != nil {
		return errors.Wrapf(err, "electing leader for round %d", round)
	}

	electionsTotal.WithLabelValues(leader.Address).Inc()
	c.obs.LeaderElected(round, leader)

	b, err := leader.Propose(c.clock(), c.maxBlockTx)
	if errors.Is(err, ErrNothingToPropose) {
		c.obs.RoundSkipped(round, leader)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "proposing block for round %d", round)
	}

	c.obs.BlockProposed(round, b)

	// Fan the identical block out to every validator. Each task reads the
	// shared immutable block and mutates only its own replica, so no
	// locking is needed; the Wait below is the round barrier.
	eg := new(errgroup.Group)
	for _, v := range c.validators {
		v := v
		eg.Go(func() error {
			resolveErr := v.Resolve(b)
			if resolveErr != nil {
				blocksRejected.WithLabelValues(rejectReason(resolveErr)).Inc()
			} else {
				blocksAccepted.Inc()
			}
			c.obs.BlockResolved(round, v.Address, b, resolveErr)
			return nil
		})
	}

	return eg.Wait()
}

// Run drives rounds strictly sequentially, asking gen for each round's
// transaction deliveries.
func (c *Coordinator) Run(ctx context.Context, rounds uint64, gen func(round uint64) []TxDelivery) error {
	for round := uint64(1); round <= rounds; round++ {
		var deliveries []TxDelivery
		if gen != nil {
			deliveries = gen(round)
		}

		if err := c.RunRound(ctx, round, deliveries); err != nil {
			return errors.Wrapf(err, "round %d", round)
		}
	}

	return nil
}
