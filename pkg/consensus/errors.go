package consensus

import "github.com/pkg/errors"

var (
	// ErrNoValidators means the network was bootstrapped empty.
	ErrNoValidators = errors.New("no validators in the network")

	// ErrNoStakeAvailable means no validator holds any stake, so leader
	// election cannot proceed. Fatal for the round.
	ErrNoStakeAvailable = errors.New("no stake available for election")

	// ErrNothingToPropose means the elected proposer's mempool was empty.
	// The round is skipped, not failed.
	ErrNothingToPropose = errors.New("proposer has no transactions to propose")
)
