package society

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// futureEvent builds a minimal reservable event n hours from gameStart.
func futureEvent(id string, hoursAhead int, fee int64) *SocialEvent {
	at := gameStart.Add(time.Duration(hoursAhead) * time.Hour)
	return &SocialEvent{
		ID: id, Name: "Event " + id, Category: EventNetworking,
		ScheduledAt: at, AvailableUntil: at.Add(24 * time.Hour),
		EntryFee: fee,
		Perks:    EventPerks{NetworkingPotential: 40, PotentialConnections: 2},
	}
}

func TestGenerateNewEventsCapacity(t *testing.T) {
	e, _, _ := newTestEngine(1, 0)

	created, err := e.GenerateNewEvents(50)
	require.NoError(t, err)
	assert.Len(t, created, MaxEvents)
	assert.Len(t, e.LiveEvents(), MaxEvents)

	_, err = e.GenerateNewEvents(1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestGenerateNewEventsPartialFill(t *testing.T) {
	e, _, _ := newTestEngine(1, 0)

	_, err := e.GenerateNewEvents(MaxEvents - 2)
	require.NoError(t, err)

	created, err := e.GenerateNewEvents(5)
	require.NoError(t, err)
	assert.Len(t, created, 2, "fills only to capacity")
}

func TestSearchEventsCostsCapital(t *testing.T) {
	e, _, _ := newTestEngine(1, 0)

	before := e.CapitalBalance()
	created, err := e.SearchEvents(3)
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, before-searchEventsCost, e.CapitalBalance())

	e.mu.Lock()
	e.capital.Debit(e.capital.Balance())
	e.mu.Unlock()

	_, err = e.SearchEvents(1)
	assert.ErrorIs(t, err, ErrInsufficientCapital)
}

func TestReserveEvent(t *testing.T) {
	e, _, w := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 48, 1000))

	require.NoError(t, e.ReserveEvent(ev.ID))
	assert.True(t, e.LiveEvents()[0].Reserved)
	assert.Equal(t, int64(4000), w.Balance(), "fee is debited up front")

	assert.ErrorIs(t, e.ReserveEvent(ev.ID), ErrAlreadyReserved)
}

func TestReserveEventInsufficientFunds(t *testing.T) {
	e, _, w := newTestEngine(1, 500)
	ev := addTestEvent(e, futureEvent("e1", 48, 1000))

	assert.ErrorIs(t, e.ReserveEvent(ev.ID), ErrInsufficientFunds)
	assert.Equal(t, int64(500), w.Balance())
	assert.False(t, e.LiveEvents()[0].Reserved)
}

func TestReserveEventInsufficientPrestige(t *testing.T) {
	e, _, _ := newTestEngine(1, 50000)
	e.SetPrestige(&fakePrestige{level: 2})
	ev := addTestEvent(e, futureEvent("e1", 48, 1000))
	ev.PrestigeRequired = 8

	assert.ErrorIs(t, e.ReserveEvent(ev.ID), ErrInsufficientPrestige)
}

func TestReserveEventPastDate(t *testing.T) {
	e, clock, _ := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 2, 100))

	clock.advance(3 * time.Hour)
	assert.ErrorIs(t, e.ReserveEvent(ev.ID), ErrEventLapsed)
}

func TestAttendFutureEventReservesInstead(t *testing.T) {
	e, _, w := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 72, 800))

	conns, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Empty(t, conns, "no connections before the event happens")
	assert.True(t, e.LiveEvents()[0].Reserved)
	assert.False(t, e.LiveEvents()[0].Attended)
	assert.Equal(t, int64(4200), w.Balance())
}

func TestAttendDueEvent(t *testing.T) {
	e, clock, w := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 2, 1000))
	ev.Perks = EventPerks{NetworkingPotential: 50, PotentialConnections: 2}

	clock.advance(3 * time.Hour)
	capitalBefore := e.CapitalBalance()

	conns, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Len(t, conns, 2)
	assert.Equal(t, int64(4000), w.Balance(), "unreserved attendance debits the fee")
	assert.Equal(t, 5, e.NetworkingLevel(), "networking rises by potential/10")
	assert.Equal(t, capitalBefore+attendCapitalBase+10, e.CapitalBalance())

	assert.Empty(t, e.LiveEvents(), "attended events leave the live set")
	assert.Len(t, e.Events(), 1, "but stay in history")

	_, err = e.AttendEvent(ev.ID)
	assert.ErrorIs(t, err, ErrAlreadyAttended)
}

func TestAttendDueReservedEventDoesNotDoubleCharge(t *testing.T) {
	e, clock, w := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 2, 1000))

	require.NoError(t, e.ReserveEvent(ev.ID))
	require.Equal(t, int64(4000), w.Balance())

	clock.advance(3 * time.Hour)
	_, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), w.Balance())
}

func TestAttendConnectionsClampToNetworkCapacity(t *testing.T) {
	e, clock, _ := newTestEngine(1, 50000)
	for i := 0; i < MaxConnections-1; i++ {
		_, err := e.AddConnection(CategoryIndustry)
		require.NoError(t, err)
	}

	ev := addTestEvent(e, futureEvent("e1", 1, 100))
	ev.Perks.PotentialConnections = 5

	clock.advance(2 * time.Hour)
	conns, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Len(t, conns, 1, "only one network slot remained")
	assert.Len(t, e.Connections(), MaxConnections)
}

func TestAttendLapsedEvent(t *testing.T) {
	e, clock, _ := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 2, 100))

	clock.advance(40 * time.Hour) // past AvailableUntil
	_, err := e.AttendEvent(ev.ID)
	assert.ErrorIs(t, err, ErrEventLapsed)
}

func TestAttendEventSkillBoostPayout(t *testing.T) {
	e, clock, w := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 1, 0))
	ev.Perks.SkillBoost = "negotiation"
	ev.Perks.SkillBoostAmount = 3
	ev.Perks.PotentialConnections = 0
	ev.Perks.NetworkingPotential = 0

	clock.advance(2 * time.Hour)
	_, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000+3*skillBoostPayout), w.Balance())
}

func TestAttendEventAwardsReputation(t *testing.T) {
	e, clock, _ := newTestEngine(1, 5000)
	p := &fakePrestige{level: 3}
	e.SetPrestige(p)

	ev := addTestEvent(e, futureEvent("e1", 1, 0))
	ev.Perks.ReputationGain = 2

	clock.advance(2 * time.Hour)
	_, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.awarded)
}

func TestRemoveEvent(t *testing.T) {
	e, clock, _ := newTestEngine(1, 5000)
	ev := addTestEvent(e, futureEvent("e1", 2, 100))
	gone := addTestEvent(e, futureEvent("e2", 4, 100))

	require.NoError(t, e.RemoveEvent(gone.ID))
	assert.Len(t, e.Events(), 1)
	assert.ErrorIs(t, e.RemoveEvent("nope"), ErrNotFound)

	clock.advance(3 * time.Hour)
	_, err := e.AttendEvent(ev.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, e.RemoveEvent(ev.ID), ErrAlreadyAttended)
}
