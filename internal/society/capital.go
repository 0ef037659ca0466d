// Social capital, the bounded spendable resource gating networking
// actions. Two regeneration modes: an hourly passive trickle and a
// larger monthly grant. Month-boundary tracking belongs to the sweep,
// not to the ledger.
package society

import "time"

const (
	// CapitalMax bounds the social capital pool.
	CapitalMax = 200
	// CapitalStart is the balance a fresh engine begins with.
	CapitalStart = 100

	passiveBaseRate  = 3  // capital per elapsed hour
	passiveMaxHours  = 24 // trickle caps at a day's worth per call
	monthlyBaseGrant = 100
)

// Capital is the social capital ledger. All spends are debit-checked;
// the balance never leaves [0, CapitalMax].
type Capital struct {
	balance      int
	lastActivity time.Time
}

// NewCapital creates a ledger with the starting balance.
func NewCapital(now time.Time) Capital {
	return Capital{balance: CapitalStart, lastActivity: now}
}

// Balance returns the current balance.
func (c *Capital) Balance() int { return c.balance }

// LastActivity returns the timestamp of the last tracked activity.
func (c *Capital) LastActivity() time.Time { return c.lastActivity }

// Debit removes amount from the pool. Returns false (and leaves the
// balance untouched) when the pool is too low.
func (c *Capital) Debit(amount int) bool {
	if c.balance < amount {
		return false
	}
	c.balance -= amount
	return true
}

// Credit adds amount to the pool, clamped at CapitalMax. Returns the
// amount actually applied.
func (c *Capital) Credit(amount int) int {
	before := c.balance
	c.balance += amount
	if c.balance > CapitalMax {
		c.balance = CapitalMax
	}
	return c.balance - before
}

// CreditPassive applies the hourly trickle for time elapsed since the
// last tracked activity, capped at 24 hours' worth. The activity
// timestamp moves only when a positive amount is computed, so sub-hour
// calls keep accumulating toward the next full hour.
func (c *Capital) CreditPassive(now time.Time, networkingLevel int) int {
	hours := int(now.Sub(c.lastActivity).Hours())
	if hours < 1 {
		return 0
	}
	if hours > passiveMaxHours {
		hours = passiveMaxHours
	}

	amount := (passiveBaseRate + networkingLevel/20) * hours
	if amount <= 0 {
		return 0
	}
	c.lastActivity = now
	return c.Credit(amount)
}

// CreditMonthly applies the calendar-month grant. The caller is
// responsible for invoking it exactly once per month boundary.
func (c *Capital) CreditMonthly(networkingLevel int) int {
	return c.Credit(monthlyBaseGrant + networkingLevel/10)
}

// restore rebuilds ledger internals from persisted state.
func (c *Capital) restore(balance int, lastActivity time.Time) {
	if balance < 0 {
		balance = 0
	}
	if balance > CapitalMax {
		balance = CapitalMax
	}
	c.balance = balance
	c.lastActivity = lastActivity
}
