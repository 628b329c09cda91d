package netsim

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	randv2 "math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tcfw/stakesim/internal/config"
	"github.com/tcfw/stakesim/internal/utils/logging"
	"github.com/tcfw/stakesim/pkg/consensus"
	"github.com/tcfw/stakesim/pkg/tx"
)

const (
	minTxPerRound = 3
	maxTxPerRound = 8
	maxRecipients = 3

	minTxAmount = 0.1
	maxTxAmount = 10
)

// Network owns everything peripheral to the consensus core: validator
// bootstrap, random transaction generation, recipient sampling, round pacing
// and console narration.
type Network struct {
	cfg   *config.Config
	seed  int64
	rng   *rand.Rand
	coord *consensus.Coordinator
	vals  []*consensus.Validator

	amounts distuv.Uniform
	limiter *rate.Limiter
}

// New bootstraps cfg.Validators validators with stakes drawn uniformly from
// the configured range and wires them into a coordinator.
func New(cfg *config.Config) (*Network, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	n := &Network{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		amounts: distuv.Uniform{
			Min: minTxAmount,
			Max: maxTxAmount,
			Src: randv2.NewPCG(uint64(seed), uint64(seed)+1),
		},
	}

	stakes := distuv.Uniform{
		Min: cfg.StakeMin,
		Max: cfg.StakeMax,
		Src: randv2.NewPCG(uint64(seed), uint64(seed)),
	}

	obs := &consoleObserver{log: logging.Entry()}

	for i := 0; i < cfg.Validators; i++ {
		v, err := consensus.NewValidator(n.newAddress(i), int64(stakes.Rand()))
		if err != nil {
			return nil, errors.Wrap(err, "creating validator")
		}
		n.vals = append(n.vals, v)
		obs.ValidatorCreated(v)
	}

	coord, err := consensus.NewCoordinator(
		consensus.WithValidators(n.vals...),
		consensus.WithRandSource(n.rng),
		consensus.WithObserver(obs),
		consensus.WithMaxBlockTx(cfg.MaxBlockTx),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating coordinator")
	}
	n.coord = coord

	limit := rate.Inf
	if cfg.RoundsPerSecond > 0 {
		limit = rate.Limit(cfg.RoundsPerSecond)
	}
	n.limiter = rate.NewLimiter(limit, 1)

	return n, nil
}

// newAddress builds a stub address: it identifies a participant but carries
// no key material.
func (n *Network) newAddress(i int) string {
	var buf [8]byte
	n.rng.Read(buf[:])
	sum := sha256.Sum256(buf[:])

	return fmt.Sprintf("validator-%d-%s", i, hex.EncodeToString(sum[:4]))
}

func (n *Network) Validators() []*consensus.Validator {
	return n.vals
}

func (n *Network) Seed() int64 {
	return n.seed
}

// generate builds this round's random transactions and samples up to
// maxRecipients mempools for each.
func (n *Network) generate() []consensus.TxDelivery {
	count := minTxPerRound + n.rng.Intn(maxTxPerRound-minTxPerRound+1)

	deliveries := make([]consensus.TxDelivery, 0, count)
	for i := 0; i < count; i++ {
		si := n.rng.Intn(len(n.vals))
		ri := n.rng.Intn(len(n.vals))
		if si == ri {
			// no self transfers
			continue
		}

		t, err := tx.New(n.vals[si].Address, n.vals[ri].Address, n.amounts.Rand(), time.Now().UnixNano())
		if err != nil {
			// generated inputs are always in range
			continue
		}

		k := maxRecipients
		if len(n.vals) < k {
			k = len(n.vals)
		}

		recipients := make([]*consensus.Validator, 0, k)
		for _, vi := range n.rng.Perm(len(n.vals))[:k] {
			recipients = append(recipients, n.vals[vi])
		}

		deliveries = append(deliveries, consensus.TxDelivery{Tx: t, Recipients: recipients})
	}

	return deliveries
}

// Run drives the configured number of rounds, paced by the limiter, then
// reports the final state.
func (n *Network) Run(ctx context.Context) error {
	logging.WithFields(logging.Fields{
		"validators": len(n.vals),
		"rounds":     n.cfg.Rounds,
		"seed":       n.seed,
	}).Info("starting simulation")

	for round := uint64(1); round <= n.cfg.Rounds; round++ {
		if err := n.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "pacing round")
		}

		if err := n.coord.RunRound(ctx, round, n.generate()); err != nil {
			return errors.Wrapf(err, "round %d", round)
		}
	}

	n.report()

	return nil
}

// Converged reports whether every replica ends with the same hash sequence.
func (n *Network) Converged() bool {
	ref := n.vals[0].Chain().HashSequence()
	for _, v := range n.vals[1:] {
		seq := v.Chain().HashSequence()
		if len(seq) != len(ref) {
			return false
		}
		for i := range ref {
			if !ref[i].Equals(seq[i]) {
				return false
			}
		}
	}
	return true
}

func (n *Network) report() {
	c := n.vals[0].Chain()
	for i := 0; i < c.Height(); i++ {
		b := c.Block(i)
		logging.WithFields(logging.Fields{
			"index":    b.Index,
			"proposer": b.Proposer,
			"txs":      len(b.Txs),
			"hash":     b.Hash.String(),
		}).Info("final chain block")
	}

	for _, v := range n.vals {
		logging.WithFields(logging.Fields{
			"validator": v.Address,
			"stake":     v.Stake,
			"height":    v.Chain().Height(),
			"pending":   v.MempoolLen(),
		}).Info("final validator state")
	}

	logging.WithFields(logging.Fields{"converged": n.Converged()}).Info("simulation finished")
}
