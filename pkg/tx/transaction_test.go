package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsNegativeAmount(t *testing.T) {
	_, err := New("alice", "bob", -0.5, 1)

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewRejectsMissingAddress(t *testing.T) {
	_, err := New("", "bob", 1, 1)
	assert.ErrorIs(t, err, ErrMissingAddress)

	_, err = New("alice", "", 1, 1)
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestMarshal(t *testing.T) {
	tx, err := New("alice", "bob", 4.2, 1234)
	if err != nil {
		t.Fatal(err)
	}

	b, err := tx.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	txRB := &Tx{}

	if err := txRB.Unmarshal(b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, tx, txRB)
}
