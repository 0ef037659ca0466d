// Event lifecycle: the calendar-size cap, the reserve/attend
// protocol, and attendance payoffs.
package society

import (
	"log/slog"
)

// Attendance tuning.
const (
	maxConnectionsPerEvent = 5
	attendCapitalBase      = 20
	rivalEncounterChance   = 0.20
	celebrityPoolPrestige  = 10 // prestige floor that adds celebrities/influencers to the pool
	skillBoostPayout       = 1000 // wealth credited per skill boost point
)

// GenerateNewEvents creates up to count new events via the weighted
// category draw, bounded by remaining calendar capacity. Rejects with
// ErrCapacityExceeded when the calendar is already full.
func (e *Engine) GenerateNewEvents(count int) ([]*SocialEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generateEvents(count)
}

// generateEvents is the lock-held body of GenerateNewEvents, shared
// with the sweep's backfill step.
func (e *Engine) generateEvents(count int) ([]*SocialEvent, error) {
	remaining := MaxEvents - e.liveEventCount()
	if remaining <= 0 {
		return nil, ErrCapacityExceeded
	}
	if count > remaining {
		count = remaining
	}

	now := e.clock.Now()
	prestige := e.prestigeLevel()
	created := make([]*SocialEvent, 0, count)
	for i := 0; i < count; i++ {
		ev := e.gen.Event(e.gen.WeightedEventCategory(), prestige, now)
		e.events = append(e.events, ev)
		created = append(created, ev)
	}

	slog.Debug("events generated", "count", len(created), "live", e.liveEventCount())
	return created, nil
}

// SearchEvents is the user-initiated refill: it costs social capital,
// unlike the sweep's free backfill.
func (e *Engine) SearchEvents(count int) ([]*SocialEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.liveEventCount() >= MaxEvents {
		return nil, ErrCapacityExceeded
	}
	if !e.capital.Debit(searchEventsCost) {
		return nil, ErrInsufficientCapital
	}
	return e.generateEvents(count)
}

// RemoveEvent discards an event. Attended events are immutable history
// and cannot be removed. No refund.
func (e *Engine) RemoveEvent(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, ev := range e.events {
		if ev.ID != id {
			continue
		}
		if ev.Attended {
			return ErrAlreadyAttended
		}
		e.events = append(e.events[:i], e.events[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// ReserveEvent pays the entry fee up front and commits the event to
// auto-resolve on its date. Valid only for events strictly in the
// future.
func (e *Engine) ReserveEvent(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ev := e.findEvent(id)
	if ev == nil {
		return ErrNotFound
	}
	return e.reserveLocked(ev)
}

func (e *Engine) reserveLocked(ev *SocialEvent) error {
	if ev.Attended {
		return ErrAlreadyAttended
	}
	if ev.Reserved {
		return ErrAlreadyReserved
	}
	if !e.clock.Now().Before(ev.ScheduledAt) {
		return ErrEventLapsed
	}
	if e.prestigeLevel() < ev.PrestigeRequired {
		return ErrInsufficientPrestige
	}
	if !e.wealth.Debit(ev.EntryFee) {
		return ErrInsufficientFunds
	}

	ev.Reserved = true
	return nil
}

// AttendEvent resolves an event. Called on a future, unreserved event
// it performs the reservation protocol instead and returns no
// connections. Called once the event's date has arrived it performs
// actual attendance: fee if unpaid, new connections scaled by the
// event's potential and the networking level, capital and networking
// rewards, and the terminal Attended mark.
func (e *Engine) AttendEvent(id string) ([]*Connection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ev := e.findEvent(id)
	if ev == nil {
		return nil, ErrNotFound
	}
	return e.attendLocked(ev, false)
}

func (e *Engine) attendLocked(ev *SocialEvent, silent bool) ([]*Connection, error) {
	if ev.Attended {
		return nil, ErrAlreadyAttended
	}

	now := e.clock.Now()
	if now.Before(ev.ScheduledAt) {
		// Early call: this is a reservation, not an attendance.
		if err := e.reserveLocked(ev); err != nil {
			return nil, err
		}
		if !silent {
			e.notify(Notice{Category: "event", Message: "Reserved: " + ev.Name + "."})
		}
		return nil, nil
	}

	// The date has arrived. An unreserved event is only attendable
	// inside its availability window.
	if !ev.Reserved {
		if now.After(ev.AvailableUntil) {
			return nil, ErrEventLapsed
		}
		if e.prestigeLevel() < ev.PrestigeRequired {
			return nil, ErrInsufficientPrestige
		}
		if !e.wealth.Debit(ev.EntryFee) {
			return nil, ErrInsufficientFunds
		}
	}

	newConnections := e.meetAttendees(ev)
	ev.Attended = true

	e.raiseNetworking(ev.Perks.NetworkingPotential / 10)
	e.capital.Credit(attendCapitalBase + ev.Perks.NetworkingPotential/5)
	e.awardPrestige(ev.Perks.ReputationGain)
	if ev.Perks.SkillBoost != "" {
		e.wealth.Credit(int64(ev.Perks.SkillBoostAmount) * skillBoostPayout)
	}

	e.notify(Notice{
		Category: "event",
		Message:  "Attended " + ev.Name + ".",
		Silent:   silent,
	})

	slog.Info("event attended",
		"name", ev.Name,
		"category", ev.Category.String(),
		"new_connections", len(newConnections),
		"silent", silent,
	)
	return newConnections, nil
}

// meetAttendees synthesizes the new connections gained at an event,
// clamped to remaining network capacity. Caller holds the lock.
func (e *Engine) meetAttendees(ev *SocialEvent) []*Connection {
	potential := ev.Perks.PotentialConnections + e.networking/20
	if potential > maxConnectionsPerEvent {
		potential = maxConnectionsPerEvent
	}
	if room := MaxConnections - len(e.connections); potential > room {
		potential = room
	}
	if potential <= 0 {
		return nil
	}

	pool := []ConnectionCategory{
		CategoryBusinessContact, CategoryInvestor, CategoryIndustry, CategoryMentor,
	}
	if ev.PrestigeRequired >= celebrityPoolPrestige {
		pool = append(pool, CategoryCelebrity, CategoryInfluencer)
	}
	if e.gen.Chance(rivalEncounterChance) {
		pool = append(pool, CategoryRival)
	}

	made := make([]*Connection, 0, potential)
	for i := 0; i < potential; i++ {
		made = append(made, e.spawnConnection(e.gen.PickCategory(pool)))
	}
	return made
}

// Events returns deep copies of all tracked events, attended history
// included.
func (e *Engine) Events() []SocialEvent {
	return e.Snapshot().Events
}

// LiveEvents returns copies of the non-attended events only.
func (e *Engine) LiveEvents() []SocialEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	live := make([]SocialEvent, 0, len(e.events))
	for _, ev := range e.events {
		if !ev.Attended {
			live = append(live, *ev)
		}
	}
	return live
}
