// Connection lifecycle: the network-size cap, relationship
// progression, the schedule/attend meeting protocol, and benefit
// redemption.
package society

import (
	"log/slog"
	"math"
)

// Action costs in social capital.
const (
	baseMeetingCost   = 10
	addConnectionCost = 20
	searchEventsCost  = 15
)

// Meeting rewards.
const (
	scheduleLevelGain    = 2 // immediate "making an effort" bump
	attendBaseGain       = 5
	mentorTipPerStrength = 50 // wealth credit per point of mentorship depth
)

// meetingCategoryMult scales meeting cost by connection category.
var meetingCategoryMult = map[ConnectionCategory]float64{
	CategoryCelebrity: 3.0,
	CategoryInvestor:  2.5,
	CategoryMentor:    2.0,
}

// meetingStatusMult scales meeting cost by closeness. Closer
// relationships are cheaper to schedule: investment in a relationship
// pays back in reduced friction.
var meetingStatusMult = map[ConnectionStatus]float64{
	StatusClose:        0.7,
	StatusFriend:       0.8,
	StatusAssociate:    1.0,
	StatusContact:      1.2,
	StatusAcquaintance: 1.5,
}

// introductionPool is the category pool a network introduction draws from.
var introductionPool = []ConnectionCategory{
	CategoryBusinessContact, CategoryInvestor, CategoryIndustry,
}

// MeetingCost computes the social capital cost of scheduling a meeting
// with the given connection.
func MeetingCost(c *Connection) int {
	catMult, ok := meetingCategoryMult[c.Category]
	if !ok {
		catMult = 1.0
	}
	return int(math.Round(baseMeetingCost * catMult * meetingStatusMult[c.Status]))
}

// AddConnection creates a new connection of the given category. Costs
// social capital and seeds one starting benefit. Rejects with
// ErrCapacityExceeded at the network cap.
func (e *Engine) AddConnection(cat ConnectionCategory) (*Connection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.connections) >= MaxConnections {
		return nil, ErrCapacityExceeded
	}
	if !e.capital.Debit(addConnectionCost) {
		return nil, ErrInsufficientCapital
	}

	conn := e.spawnConnection(cat)
	e.notify(Notice{Category: "connection", Message: "You connected with " + conn.Name + "."})
	return conn, nil
}

// spawnConnection creates and appends a connection, seeding a starting
// benefit. Caller holds the lock and has already checked capacity.
func (e *Engine) spawnConnection(cat ConnectionCategory) *Connection {
	now := e.clock.Now()
	conn := e.gen.Connection(cat, e.prestigeLevel(), now)
	conn.Benefits = append(conn.Benefits, e.gen.Benefit(conn, now))
	e.connections = append(e.connections, conn)

	slog.Debug("connection created",
		"name", conn.Name,
		"category", conn.Category.String(),
		"level", conn.Level,
	)
	return conn
}

// RemoveConnection deletes a connection unconditionally if present.
func (e *Engine) RemoveConnection(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, c := range e.connections {
		if c.ID == id {
			e.connections = append(e.connections[:i], e.connections[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ScheduleInteraction books a meeting with the connection, debiting the
// closeness-scaled cost and granting a small immediate relationship
// bump distinct from the larger attendance reward.
func (e *Engine) ScheduleInteraction(id string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	conn := e.findConnection(id)
	if conn == nil {
		return 0, ErrNotFound
	}

	cost := MeetingCost(conn)
	if !e.capital.Debit(cost) {
		return 0, ErrInsufficientCapital
	}

	conn.PendingMeeting = true
	e.raiseRelationship(conn, scheduleLevelGain)
	return cost, nil
}

// AttendMeeting resolves a pending meeting: relationship gain scaled by
// networking level, one fresh benefit, and the category side effects
// (rivals gain rivalry intensity at half the relationship gain; mentors
// tip wealth proportional to mentorship depth).
func (e *Engine) AttendMeeting(id string) (*Benefit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	conn := e.findConnection(id)
	if conn == nil {
		return nil, ErrNotFound
	}
	if !conn.PendingMeeting {
		return nil, ErrNoPendingMeeting
	}

	now := e.clock.Now()
	gain := attendBaseGain + e.networking/10

	if conn.Category == CategoryRival {
		gain /= 2
		conn.Strength += e.gen.RandomStrengthGain()
		if conn.Strength > 100 {
			conn.Strength = 100
		}
	}
	e.raiseRelationship(conn, gain)

	if conn.Category == CategoryMentor {
		e.wealth.Credit(int64(conn.Strength) * mentorTipPerStrength)
	}

	benefit := e.gen.Benefit(conn, now)
	conn.Benefits = append(conn.Benefits, benefit)
	conn.PendingMeeting = false
	conn.LastInteraction = now

	e.notify(Notice{Category: "meeting", Message: "You met with " + conn.Name + "."})
	return &benefit, nil
}

// raiseRelationship bumps the relationship level (clamped to 100) and
// re-derives status. Status thresholds are monotonic checkpoints (the
// status never moves down) and rivals cap at associate regardless of
// level. Caller holds the lock.
func (e *Engine) raiseRelationship(conn *Connection, delta int) {
	conn.Level += delta
	if conn.Level > 100 {
		conn.Level = 100
	}

	derived := conn.Status
	switch {
	case conn.Level >= 80:
		derived = StatusClose
	case conn.Level >= 60:
		derived = StatusFriend
	case conn.Level >= 40:
		derived = StatusAssociate
	case conn.Level >= 20:
		derived = StatusContact
	}
	if conn.Category == CategoryRival && derived > StatusAssociate {
		derived = StatusAssociate
	}
	if derived > conn.Status {
		conn.Status = derived
	}
}

// UseBenefit redeems a benefit, dispatching on its type. A network
// introduction tries to grow the network and quietly fizzles at the
// capacity or eligibility limits; every other type pays out directly.
func (e *Engine) UseBenefit(connectionID, benefitID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	conn := e.findConnection(connectionID)
	if conn == nil {
		return ErrNotFound
	}

	var benefit *Benefit
	for i := range conn.Benefits {
		if conn.Benefits[i].ID == benefitID {
			benefit = &conn.Benefits[i]
			break
		}
	}
	if benefit == nil {
		return ErrNotFound
	}
	if benefit.Used {
		return ErrAlreadyUsed
	}

	switch benefit.Type {
	case BenefitSkillBoost:
		units := benefit.Value / 5000
		if units < 1 {
			units = 1
		}
		e.wealth.Credit(units * 1000)
	case BenefitLifestyleDiscount:
		e.wealth.Credit(benefit.Value / 2)
	case BenefitNetworkIntroduction:
		if len(e.connections) < MaxConnections {
			intro := e.spawnConnection(e.gen.PickCategory(introductionPool))
			e.notify(Notice{Category: "connection",
				Message: conn.Name + " introduced you to " + intro.Name + "."})
		}
	case BenefitReputationBoost:
		e.wealth.Credit(benefit.Value / 2)
		e.awardPrestige(1)
	default:
		// investmentTip, businessOpportunity, regulationInsight,
		// marketIntelligence: the value pays out directly.
		e.wealth.Credit(benefit.Value)
	}

	benefit.Used = true
	return nil
}

// Connections returns deep copies of the live connections.
func (e *Engine) Connections() []Connection {
	return e.Snapshot().Connections
}
