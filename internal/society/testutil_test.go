package society

import (
	"time"
)

// gameStart is a fixed game-time origin for tests.
var gameStart = time.Date(2001, time.March, 5, 8, 0, 0, 0, time.UTC)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeWealth struct {
	balance int64
}

func (w *fakeWealth) Balance() int64 { return w.balance }

func (w *fakeWealth) Credit(amount int64) { w.balance += amount }

func (w *fakeWealth) Debit(amount int64) bool {
	if w.balance < amount {
		return false
	}
	w.balance -= amount
	return true
}

type fakePrestige struct {
	level   int
	awarded int
}

func (p *fakePrestige) Level() int        { return p.level }
func (p *fakePrestige) AwardPoints(n int) { p.awarded += n }

type recordNotifier struct {
	notices []Notice
}

func (n *recordNotifier) Notify(notice Notice) {
	n.notices = append(n.notices, notice)
}

// newTestEngine builds an engine on a manual clock with a seeded
// generator and the given wealth balance.
func newTestEngine(seed int64, balance int64) (*Engine, *testClock, *fakeWealth) {
	clock := &testClock{t: gameStart}
	w := &fakeWealth{balance: balance}
	e := New(clock, w, NewGenerator(seed))
	return e, clock, w
}

// addTestConnection injects a connection directly, bypassing generation
// and costs, so tests can pin exact starting fields.
func addTestConnection(e *Engine, c *Connection) *Connection {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.connections = append(e.connections, c)
	return c
}

// addTestEvent injects an event directly.
func addTestEvent(e *Engine, ev *SocialEvent) *SocialEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
	return ev
}
