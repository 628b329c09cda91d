package consensus

import "math/rand"

// Elect picks exactly one validator, with probability proportional to its
// share of the total stake: the standard weighted roulette. One uniform draw
// in [0, total) is resolved by a cumulative walk over the validators in their
// fixed registration order, so the result is reproducible given the same
// random source and the same ordering. A draw landing exactly on a boundary
// resolves to the earlier validator in the walk.
//
// Election is read-only: it touches no mempool and no chain.
func Elect(validators []*Validator, r *rand.Rand) (*Validator, error) {
	if len(validators) == 0 {
		return nil, ErrNoValidators
	}

	var total int64
	for _, v := range validators {
		total += v.Stake
	}
	if total == 0 {
		return nil, ErrNoStakeAvailable
	}

	if len(validators) == 1 {
		return validators[0], nil
	}

	draw := r.Int63n(total)

	var cum int64
	for _, v := range validators {
		cum += v.Stake
		if draw < cum {
			return v, nil
		}
	}

	// draw < total == final cumulative sum, so the walk always returns
	return validators[len(validators)-1], nil
}
