package tx

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	Version1 uint8 = 1
)

var (
	ErrInvalidAmount  = errors.New("tx amount must not be negative")
	ErrMissingAddress = errors.New("tx requires a sender and a recipient")
)

// Tx is a single value transfer between two participants. A Tx is built once
// and never modified; a block takes its own copy by value when it consumes
// one from a mempool.
type Tx struct {
	Version   uint8   `msgpack:"v"`
	Ts        int64   `msgpack:"t"`
	Sender    string  `msgpack:"s"`
	Recipient string  `msgpack:"r"`
	Amount    float64 `msgpack:"a"`
}

// New validates the transfer at construction time rather than at use sites.
func New(sender, recipient string, amount float64, ts int64) (*Tx, error) {
	if sender == "" || recipient == "" {
		return nil, ErrMissingAddress
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	return &Tx{
		Version:   Version1,
		Ts:        ts,
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}, nil
}

func (t *Tx) Marshal() ([]byte, error) {
	b, err := msgpack.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling tx")
	}

	return b, nil
}

func (t *Tx) Unmarshal(b []byte) error {
	if err := msgpack.Unmarshal(b, t); err != nil {
		return errors.Wrap(err, "unmarshaling tx")
	}

	return nil
}
