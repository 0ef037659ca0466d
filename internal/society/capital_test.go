package society

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapitalDebitInsufficient(t *testing.T) {
	c := NewCapital(gameStart)

	assert.True(t, c.Debit(CapitalStart))
	assert.Equal(t, 0, c.Balance())
	assert.False(t, c.Debit(1))
	assert.Equal(t, 0, c.Balance())
}

func TestCapitalCreditClamped(t *testing.T) {
	c := NewCapital(gameStart)

	applied := c.Credit(500)
	assert.Equal(t, CapitalMax-CapitalStart, applied)
	assert.Equal(t, CapitalMax, c.Balance())
}

func TestCreditPassive(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		networking int
		want       int
	}{
		{name: "under an hour yields nothing", elapsed: 59 * time.Minute, networking: 0, want: 0},
		{name: "one hour at base rate", elapsed: time.Hour, networking: 0, want: 3},
		{name: "five hours with networking bonus", elapsed: 5 * time.Hour, networking: 20, want: 20},
		{name: "capped at a day's worth", elapsed: 72 * time.Hour, networking: 20, want: 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCapital(gameStart)
			c.Debit(CapitalStart) // start from zero so nothing clamps

			got := c.CreditPassive(gameStart.Add(tt.elapsed), tt.networking)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreditPassiveKeepsAccumulatingUnderAnHour(t *testing.T) {
	c := NewCapital(gameStart)
	c.Debit(CapitalStart)

	// A sub-hour call must not move the activity timestamp, so the
	// elapsed time keeps building toward the next full hour.
	assert.Equal(t, 0, c.CreditPassive(gameStart.Add(30*time.Minute), 0))
	assert.Equal(t, gameStart, c.LastActivity())

	assert.Equal(t, 3, c.CreditPassive(gameStart.Add(time.Hour), 0))
	assert.Equal(t, gameStart.Add(time.Hour), c.LastActivity())
}

func TestCreditMonthly(t *testing.T) {
	c := NewCapital(gameStart)
	c.Debit(CapitalStart)

	assert.Equal(t, 100, c.CreditMonthly(0))

	c.Debit(c.Balance())
	assert.Equal(t, 104, c.CreditMonthly(45))
}

func TestCapitalNeverLeavesBounds(t *testing.T) {
	c := NewCapital(gameStart)

	for i := 0; i < 50; i++ {
		c.Credit(37)
		assert.LessOrEqual(t, c.Balance(), CapitalMax)
		c.Debit(61)
		assert.GreaterOrEqual(t, c.Balance(), 0)
	}
}
