// Package wealth provides the in-memory character wealth ledger the
// engine collaborates with. Debits are balance-checked; the balance
// never goes negative.
package wealth

import "sync"

// Ledger tracks the character's liquid wealth.
type Ledger struct {
	mu      sync.Mutex
	balance int64
}

// NewLedger creates a ledger with the given starting balance.
func NewLedger(initial int64) *Ledger {
	return &Ledger{balance: initial}
}

// Balance returns the current balance.
func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Credit adds amount to the balance.
func (l *Ledger) Credit(amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > 0 {
		l.balance += amount
	}
}

// Debit removes amount if affordable. Returns false and leaves the
// balance untouched otherwise.
func (l *Ledger) Debit(amount int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount < 0 || l.balance < amount {
		return false
	}
	l.balance -= amount
	return true
}

// SetBalance replaces the balance outright (restore path).
func (l *Ledger) SetBalance(amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = amount
}
