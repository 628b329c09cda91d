package consensus

import (
	"github.com/tcfw/stakesim/pkg/chain"
	"github.com/tcfw/stakesim/pkg/tx"
)

// Observer receives structured events from the consensus core. The core
// never formats output; console narration, metrics dashboards or anything
// else hangs off this interface.
type Observer interface {
	ValidatorCreated(v *Validator)
	TxReceived(addr string, t *tx.Tx)
	LeaderElected(round uint64, v *Validator)
	BlockProposed(round uint64, b *chain.Block)
	BlockResolved(round uint64, addr string, b *chain.Block, err error)
	RoundSkipped(round uint64, leader *Validator)
}

// NopObserver discards all events.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) ValidatorCreated(*Validator)                       {}
func (NopObserver) TxReceived(string, *tx.Tx)                         {}
func (NopObserver) LeaderElected(uint64, *Validator)                  {}
func (NopObserver) BlockProposed(uint64, *chain.Block)                {}
func (NopObserver) BlockResolved(uint64, string, *chain.Block, error) {}
func (NopObserver) RoundSkipped(uint64, *Validator)                   {}
