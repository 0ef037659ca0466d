// Content and benefit generation: instantiates connections, events,
// and benefits from the template catalogs with randomized fields.
package society

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Generation tuning constants.
const (
	initialLevelMin     = 10 // initial relationship level floor
	initialLevelSpan    = 20 // level drawn from [min, min+span)
	initialStrengthMin  = 10
	initialStrengthSpan = 30

	eventMinDaysAhead  = 5
	eventDaysAheadSpan = 21 // scheduled 5–25 days out
	eventFirstSlotHour = 8  // quarter-hour slots from 08:00
	eventSlotCount     = 48 // ... through 19:45
	eventWindow        = 24 * time.Hour

	benefitLifetimeDays = 30
	benefitBaseValue    = 1000
	benefitLevelValue   = 100
)

// Generator creates concrete connections, events, and benefits. It owns
// its random source so a fixed seed reproduces every draw.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Connection instantiates a connection of the given category, honoring
// the prestige eligibility floor. When no template qualifies the floor
// is relaxed in steps of 2 (never below 0) rather than failing.
func (g *Generator) Connection(cat ConnectionCategory, prestige int, now time.Time) *Connection {
	tmpl := g.pickConnectionTemplate(cat, prestige)

	return &Connection{
		ID:              uuid.NewString(),
		Name:            tmpl.Name,
		Category:        cat,
		Expertise:       tmpl.Expertise,
		Level:           initialLevelMin + g.rng.Intn(initialLevelSpan),
		Status:          StatusAcquaintance,
		Strength:        initialStrengthMin + g.rng.Intn(initialStrengthSpan),
		LastInteraction: now,
	}
}

func (g *Generator) pickConnectionTemplate(cat ConnectionCategory, prestige int) ConnectionTemplate {
	pool := connectionTemplates[cat]
	if len(pool) == 0 {
		pool = connectionTemplates[CategoryBusinessContact]
	}

	for relax := 0; ; relax += 2 {
		var eligible []ConnectionTemplate
		for _, t := range pool {
			floor := t.MinPrestige - relax
			if floor < 0 {
				floor = 0
			}
			if prestige >= floor {
				eligible = append(eligible, t)
			}
		}
		if len(eligible) > 0 {
			return eligible[g.rng.Intn(len(eligible))]
		}
		if relax > 100 {
			// Every floor has hit 0 by now; keep the loop bounded.
			return pool[g.rng.Intn(len(pool))]
		}
	}
}

// Event instantiates an event of the given category, scheduled 5–25
// game-days ahead at a random quarter-hour between 08:00 and 19:45.
func (g *Generator) Event(cat EventCategory, prestige int, now time.Time) *SocialEvent {
	tmpl := g.pickEventTemplate(cat, prestige)

	daysAhead := eventMinDaysAhead + g.rng.Intn(eventDaysAheadSpan)
	slot := g.rng.Intn(eventSlotCount)
	day := now.AddDate(0, 0, daysAhead)
	scheduled := time.Date(day.Year(), day.Month(), day.Day(),
		eventFirstSlotHour+slot/4, 15*(slot%4), 0, 0, day.Location())

	fee := tmpl.FeeMin
	if span := tmpl.FeeMax - tmpl.FeeMin; span > 0 {
		fee += g.rng.Int63n(span + 1)
	}

	return &SocialEvent{
		ID:               uuid.NewString(),
		Name:             tmpl.Name,
		Description:      tmpl.Description,
		Category:         cat,
		ScheduledAt:      scheduled,
		AvailableUntil:   scheduled.Add(eventWindow),
		PrestigeRequired: tmpl.MinPrestige,
		EntryFee:         fee,
		Perks:            tmpl.Perks,
	}
}

func (g *Generator) pickEventTemplate(cat EventCategory, prestige int) EventTemplate {
	pool := eventTemplates[cat]
	if len(pool) == 0 {
		pool = eventTemplates[EventNetworking]
	}

	for relax := 0; ; relax += 2 {
		var eligible []EventTemplate
		for _, t := range pool {
			floor := t.MinPrestige - relax
			if floor < 0 {
				floor = 0
			}
			if prestige >= floor {
				eligible = append(eligible, t)
			}
		}
		if len(eligible) > 0 {
			return eligible[g.rng.Intn(len(eligible))]
		}
		if relax > 100 {
			return pool[g.rng.Intn(len(pool))]
		}
	}
}

// WeightedEventCategory draws an event category from the frequency
// weights (business-oriented categories come up most often).
func (g *Generator) WeightedEventCategory() EventCategory {
	total := 0
	for _, w := range eventCategoryWeights {
		total += w
	}

	// Walk categories in declaration order so the draw is stable for a
	// given seed regardless of map iteration.
	roll := g.rng.Intn(total)
	for c := EventCharity; c <= EventSporting; c++ {
		roll -= eventCategoryWeights[c]
		if roll < 0 {
			return c
		}
	}
	return EventNetworking
}

// Benefit synthesizes a one-shot reward for the given connection. Value
// scales with relationship level, category, and expertise.
func (g *Generator) Benefit(conn *Connection, now time.Time) Benefit {
	types := benefitTypesByCategory[conn.Category]
	if len(types) == 0 {
		types = []BenefitType{BenefitMarketIntelligence}
	}
	btype := types[g.rng.Intn(len(types))]

	catMult, ok := benefitValueCategoryMult[conn.Category]
	if !ok {
		catMult = 1.0
	}
	expMult, ok := benefitValueExpertiseMult[conn.Expertise]
	if !ok {
		expMult = 1.0
	}

	base := float64(benefitBaseValue + conn.Level*benefitLevelValue)
	value := int64(math.Round(base * catMult * expMult))

	lines := benefitDescriptions[btype]
	desc := fmt.Sprintf(lines[g.rng.Intn(len(lines))],
		conn.Name, "$"+humanize.Comma(value))

	return Benefit{
		ID:          uuid.NewString(),
		Type:        btype,
		Description: desc,
		Value:       value,
		ExpiresAt:   now.AddDate(0, 0, benefitLifetimeDays),
	}
}

// PickCategory draws uniformly from the given category pool.
func (g *Generator) PickCategory(pool []ConnectionCategory) ConnectionCategory {
	return pool[g.rng.Intn(len(pool))]
}

// Chance returns true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.rng.Float64() < p
}

// RandomStrengthGain returns a rivalry strength bump in [2,5].
func (g *Generator) RandomStrengthGain() int {
	return 2 + g.rng.Intn(4)
}
