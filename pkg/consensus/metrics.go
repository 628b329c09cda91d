package consensus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tcfw/stakesim/pkg/chain"
)

var (
	electionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stakesim_elections_total",
		Help: "Leader elections won, by validator address.",
	}, []string{"validator"})

	blocksAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stakesim_blocks_accepted_total",
		Help: "Blocks accepted onto local replicas.",
	})

	blocksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stakesim_blocks_rejected_total",
		Help: "Blocks rejected by local replicas, by reason.",
	}, []string{"reason"})
)

func rejectReason(err error) string {
	switch {
	case errors.Is(err, chain.ErrTampered):
		return "tampered"
	case errors.Is(err, chain.ErrStaleOrForked):
		return "stale_or_forked"
	default:
		return "other"
	}
}
