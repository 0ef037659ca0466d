package gametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var start = time.Date(2001, time.March, 5, 8, 0, 0, 0, time.UTC)

func TestAdvance(t *testing.T) {
	c := NewClock(start)
	assert.True(t, start.Equal(c.Now()))

	got := c.Advance(90 * time.Minute)
	assert.True(t, start.Add(90*time.Minute).Equal(got))
	assert.True(t, got.Equal(c.Now()))
}

func TestAdvanceIgnoresNegative(t *testing.T) {
	c := NewClock(start)
	got := c.Advance(-time.Hour)
	assert.True(t, start.Equal(got), "game time never runs backwards")
}

func TestAdvanceDays(t *testing.T) {
	c := NewClock(start)
	got := c.AdvanceDays(31)
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 5, got.Day())

	got = c.AdvanceDays(0)
	assert.Equal(t, time.April, got.Month())
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(start, start.Add(15*time.Hour)))
	assert.False(t, SameDay(start, start.Add(17*time.Hour)))
	assert.False(t, SameDay(start, start.AddDate(1, 0, 0)))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(start, start.AddDate(0, 0, 20)))
	assert.False(t, SameMonth(start, start.AddDate(0, 1, 0)))
	assert.False(t, SameMonth(start, start.AddDate(1, 0, 0)), "same month, different year")
}
