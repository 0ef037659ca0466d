// Engine ties the network, calendar, and capital ledger together and
// owns all mutable social state. Every mutation goes through its
// methods, which is what keeps the capacity and terminal-state
// invariants enforceable.
package society

import (
	"log/slog"
	"sync"
	"time"
)

// Capacity limits.
const (
	MaxConnections = 5
	MaxEvents      = 10 // counting only non-attended events
)

// Clock supplies the current game time. Game time is authoritative for
// every scheduling and expiry computation in the engine.
type Clock interface {
	Now() time.Time
}

// WealthLedger is the character wealth collaborator. The engine only
// reads the balance and issues credits/debits.
type WealthLedger interface {
	Balance() int64
	Credit(amount int64)
	Debit(amount int64) bool
}

// PrestigeSource is the optional prestige collaborator.
type PrestigeSource interface {
	Level() int
	AwardPoints(n int)
}

// Notice is a user-visible notification. Sweep-driven notices are
// flagged Silent so the presentation layer can mute the automatic path.
type Notice struct {
	Category string
	Message  string
	Silent   bool
}

// Notifier receives notices. Optional.
type Notifier interface {
	Notify(Notice)
}

// Engine is the social network simulation engine. One instance per
// process; collaborators are injected at construction.
type Engine struct {
	mu sync.Mutex

	clock    Clock
	wealth   WealthLedger
	prestige PrestigeSource
	notifier Notifier
	gen      *Generator

	connections []*Connection
	events      []*SocialEvent
	capital     Capital
	networking  int // networking level, 0–100

	// Sweep bookkeeping.
	lastSweepMonth int      // year*12 + month of the last sweep, 0 before first
	missedEvents   []string // names of events missed since the last month boundary
}

// New creates an engine with the required collaborators. Prestige and
// notifications are optional and attached via SetPrestige/SetNotifier.
func New(clock Clock, wealth WealthLedger, gen *Generator) *Engine {
	return &Engine{
		clock:   clock,
		wealth:  wealth,
		gen:     gen,
		capital: NewCapital(clock.Now()),
	}
}

// SetPrestige attaches the prestige collaborator.
func (e *Engine) SetPrestige(p PrestigeSource) { e.prestige = p }

// SetNotifier attaches the notification observer.
func (e *Engine) SetNotifier(n Notifier) { e.notifier = n }

// prestigeLevel reads the current prestige level, degrading to 1 when
// no prestige subsystem is attached.
func (e *Engine) prestigeLevel() int {
	if e.prestige == nil {
		return 1
	}
	return e.prestige.Level()
}

func (e *Engine) awardPrestige(n int) {
	if e.prestige != nil {
		e.prestige.AwardPoints(n)
	}
}

func (e *Engine) notify(n Notice) {
	if e.notifier != nil {
		e.notifier.Notify(n)
	}
}

// NetworkingLevel returns the current networking level.
func (e *Engine) NetworkingLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.networking
}

// raiseNetworking bumps the networking level, clamped to 100.
func (e *Engine) raiseNetworking(delta int) {
	e.networking += delta
	if e.networking > 100 {
		e.networking = 100
	}
}

// CapitalBalance returns the current social capital balance.
func (e *Engine) CapitalBalance() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capital.Balance()
}

// Snapshot is a read-only copy of engine state for presentation.
type Snapshot struct {
	Connections     []Connection  `json:"connections"`
	Events          []SocialEvent `json:"events"`
	Capital         int           `json:"social_capital"`
	NetworkingLevel int           `json:"networking_level"`
	GameTime        time.Time     `json:"game_time"`
}

// Snapshot returns deep copies of the live collections. Callers can
// mutate the result freely without touching engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Connections:     make([]Connection, 0, len(e.connections)),
		Events:          make([]SocialEvent, 0, len(e.events)),
		Capital:         e.capital.Balance(),
		NetworkingLevel: e.networking,
		GameTime:        e.clock.Now(),
	}
	for _, c := range e.connections {
		cc := *c
		cc.Benefits = append([]Benefit(nil), c.Benefits...)
		snap.Connections = append(snap.Connections, cc)
	}
	for _, ev := range e.events {
		snap.Events = append(snap.Events, *ev)
	}
	return snap
}

// State is the engine's durable shape. It round-trips losslessly
// through the persistence layer.
type State struct {
	Connections     []Connection  `json:"connections"`
	Events          []SocialEvent `json:"events"`
	Capital         int           `json:"social_capital"`
	NetworkingLevel int           `json:"networking_level"`
	LastActivity    time.Time     `json:"last_activity"`
	LastSweepMonth  int           `json:"last_sweep_month"`
	MissedEvents    []string      `json:"missed_events"`
}

// ExportState copies the full engine state for persistence.
func (e *Engine) ExportState() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		Connections:     make([]Connection, 0, len(e.connections)),
		Events:          make([]SocialEvent, 0, len(e.events)),
		Capital:         e.capital.Balance(),
		NetworkingLevel: e.networking,
		LastActivity:    e.capital.LastActivity(),
		LastSweepMonth:  e.lastSweepMonth,
		MissedEvents:    append([]string(nil), e.missedEvents...),
	}
	for _, c := range e.connections {
		cc := *c
		cc.Benefits = append([]Benefit(nil), c.Benefits...)
		st.Connections = append(st.Connections, cc)
	}
	for _, ev := range e.events {
		st.Events = append(st.Events, *ev)
	}
	return st
}

// RestoreState replaces the engine state with a previously exported one.
func (e *Engine) RestoreState(st State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.connections = e.connections[:0]
	for i := range st.Connections {
		c := st.Connections[i]
		c.Benefits = append([]Benefit(nil), st.Connections[i].Benefits...)
		e.connections = append(e.connections, &c)
	}
	e.events = e.events[:0]
	for i := range st.Events {
		ev := st.Events[i]
		e.events = append(e.events, &ev)
	}
	e.capital.restore(st.Capital, st.LastActivity)
	e.networking = st.NetworkingLevel
	e.lastSweepMonth = st.LastSweepMonth
	e.missedEvents = append([]string(nil), st.MissedEvents...)

	slog.Info("engine state restored",
		"connections", len(e.connections),
		"events", len(e.events),
		"capital", e.capital.Balance(),
		"networking", e.networking,
	)
}

// findConnection returns the live connection with the given id, or nil.
// Caller holds the lock.
func (e *Engine) findConnection(id string) *Connection {
	for _, c := range e.connections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// findEvent returns the event with the given id, or nil. Caller holds
// the lock.
func (e *Engine) findEvent(id string) *SocialEvent {
	for _, ev := range e.events {
		if ev.ID == id {
			return ev
		}
	}
	return nil
}

// liveEventCount counts non-attended events. Caller holds the lock.
func (e *Engine) liveEventCount() int {
	n := 0
	for _, ev := range e.events {
		if !ev.Attended {
			n++
		}
	}
	return n
}
