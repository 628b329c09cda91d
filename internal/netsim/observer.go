package netsim

import (
	"github.com/sirupsen/logrus"

	"github.com/tcfw/stakesim/pkg/chain"
	"github.com/tcfw/stakesim/pkg/consensus"
	"github.com/tcfw/stakesim/pkg/tx"
)

// consoleObserver narrates core events through logrus. It is the only place
// presentation meets the consensus core.
type consoleObserver struct {
	log *logrus.Entry
}

var _ consensus.Observer = (*consoleObserver)(nil)

func (o *consoleObserver) ValidatorCreated(v *consensus.Validator) {
	o.log.WithFields(logrus.Fields{
		"validator": v.Address,
		"stake":     v.Stake,
	}).Info("validator created")
}

func (o *consoleObserver) TxReceived(addr string, t *tx.Tx) {
	o.log.WithFields(logrus.Fields{
		"validator": addr,
		"sender":    t.Sender,
		"recipient": t.Recipient,
		"amount":    t.Amount,
	}).Debug("transaction received")
}

func (o *consoleObserver) LeaderElected(round uint64, v *consensus.Validator) {
	o.log.WithFields(logrus.Fields{
		"round":     round,
		"validator": v.Address,
		"stake":     v.Stake,
	}).Info("leader elected")
}

func (o *consoleObserver) BlockProposed(round uint64, b *chain.Block) {
	o.log.WithFields(logrus.Fields{
		"round":    round,
		"index":    b.Index,
		"proposer": b.Proposer,
		"txs":      len(b.Txs),
		"hash":     b.Hash.String(),
	}).Info("block proposed")
}

func (o *consoleObserver) BlockResolved(round uint64, addr string, b *chain.Block, err error) {
	f := o.log.WithFields(logrus.Fields{
		"round":     round,
		"validator": addr,
		"index":     b.Index,
	})

	if err != nil {
		f.WithError(err).Warn("block rejected")
		return
	}

	f.Debug("block accepted")
}

func (o *consoleObserver) RoundSkipped(round uint64, leader *consensus.Validator) {
	o.log.WithFields(logrus.Fields{
		"round":     round,
		"validator": leader.Address,
	}).Info("leader had no transactions, round skipped")
}
