package wealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditDebit(t *testing.T) {
	l := NewLedger(1000)

	l.Credit(500)
	assert.Equal(t, int64(1500), l.Balance())

	assert.True(t, l.Debit(1500))
	assert.Equal(t, int64(0), l.Balance())
}

func TestDebitInsufficient(t *testing.T) {
	l := NewLedger(100)

	assert.False(t, l.Debit(101))
	assert.Equal(t, int64(100), l.Balance(), "failed debit leaves the balance untouched")
}

func TestIgnoresNonPositiveCredit(t *testing.T) {
	l := NewLedger(100)
	l.Credit(0)
	l.Credit(-50)
	assert.Equal(t, int64(100), l.Balance())
}

func TestRejectsNegativeDebit(t *testing.T) {
	l := NewLedger(100)
	assert.False(t, l.Debit(-1))
	assert.Equal(t, int64(100), l.Balance())
}

func TestSetBalance(t *testing.T) {
	l := NewLedger(100)
	l.SetBalance(9999)
	assert.Equal(t, int64(9999), l.Balance())
}
