// Package society provides the social network simulation engine: NPC
// connections, time-boxed events, one-shot benefits, and the social
// capital resource that gates networking actions.
package society

import (
	"fmt"
	"time"
)

// ConnectionCategory classifies a connection archetype.
type ConnectionCategory uint8

const (
	CategoryMentor ConnectionCategory = iota
	CategoryRival
	CategoryBusinessContact
	CategoryInvestor
	CategoryIndustry
	CategoryCelebrity
	CategoryInfluencer
)

var connectionCategoryNames = [...]string{
	"mentor", "rival", "businessContact", "investor",
	"industry", "celebrity", "influencer",
}

func (c ConnectionCategory) String() string {
	if int(c) < len(connectionCategoryNames) {
		return connectionCategoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText makes categories persist as their string form.
func (c ConnectionCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ConnectionCategory) UnmarshalText(b []byte) error {
	v, err := ParseConnectionCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseConnectionCategory maps a string name back to its category.
func ParseConnectionCategory(s string) (ConnectionCategory, error) {
	for i, name := range connectionCategoryNames {
		if name == s {
			return ConnectionCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown connection category %q", s)
}

// ExpertiseArea is a connection's field of expertise.
type ExpertiseArea uint8

const (
	ExpertiseFinance ExpertiseArea = iota
	ExpertiseTechnology
	ExpertiseRealEstate
	ExpertiseRetail
	ExpertiseCreative
	ExpertiseHealthcare
	ExpertiseManufacturing
	ExpertiseHospitality
	ExpertiseEducation
	ExpertiseConsulting
)

var expertiseAreaNames = [...]string{
	"finance", "technology", "realEstate", "retail", "creative",
	"healthcare", "manufacturing", "hospitality", "education", "consulting",
}

func (e ExpertiseArea) String() string {
	if int(e) < len(expertiseAreaNames) {
		return expertiseAreaNames[e]
	}
	return fmt.Sprintf("expertise(%d)", uint8(e))
}

func (e ExpertiseArea) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *ExpertiseArea) UnmarshalText(b []byte) error {
	v, err := ParseExpertiseArea(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseExpertiseArea maps a string name back to its expertise area.
func ParseExpertiseArea(s string) (ExpertiseArea, error) {
	for i, name := range expertiseAreaNames {
		if name == s {
			return ExpertiseArea(i), nil
		}
	}
	return 0, fmt.Errorf("unknown expertise area %q", s)
}

// ConnectionStatus is the ordinal closeness tier derived from
// relationship level. Ordering matters: higher value = closer.
type ConnectionStatus uint8

const (
	StatusAcquaintance ConnectionStatus = iota
	StatusContact
	StatusAssociate
	StatusFriend
	StatusClose
)

var connectionStatusNames = [...]string{
	"acquaintance", "contact", "associate", "friend", "close",
}

func (s ConnectionStatus) String() string {
	if int(s) < len(connectionStatusNames) {
		return connectionStatusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s ConnectionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ConnectionStatus) UnmarshalText(b []byte) error {
	v, err := ParseConnectionStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseConnectionStatus maps a string name back to its status.
func ParseConnectionStatus(s string) (ConnectionStatus, error) {
	for i, name := range connectionStatusNames {
		if name == s {
			return ConnectionStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown connection status %q", s)
}

// BenefitType classifies a one-shot reward.
type BenefitType uint8

const (
	BenefitInvestmentTip BenefitType = iota
	BenefitBusinessOpportunity
	BenefitSkillBoost
	BenefitLifestyleDiscount
	BenefitRegulationInsight
	BenefitMarketIntelligence
	BenefitNetworkIntroduction
	BenefitReputationBoost
)

var benefitTypeNames = [...]string{
	"investmentTip", "businessOpportunity", "skillBoost", "lifestyleDiscount",
	"regulationInsight", "marketIntelligence", "networkIntroduction", "reputationBoost",
}

func (b BenefitType) String() string {
	if int(b) < len(benefitTypeNames) {
		return benefitTypeNames[b]
	}
	return fmt.Sprintf("benefit(%d)", uint8(b))
}

func (b BenefitType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BenefitType) UnmarshalText(data []byte) error {
	v, err := ParseBenefitType(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBenefitType maps a string name back to its benefit type.
func ParseBenefitType(s string) (BenefitType, error) {
	for i, name := range benefitTypeNames {
		if name == s {
			return BenefitType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown benefit type %q", s)
}

// EventCategory classifies a social event.
type EventCategory uint8

const (
	EventCharity EventCategory = iota
	EventBusiness
	EventGala
	EventConference
	EventClub
	EventParty
	EventNetworking
	EventWorkshop
	EventSeminar
	EventAward
	EventProductLaunch
	EventTradeShow
	EventRetreat
	EventVIPDinner
	EventSporting
)

var eventCategoryNames = [...]string{
	"charity", "business", "gala", "conference", "club", "party",
	"networking", "workshop", "seminar", "award", "productLaunch",
	"tradeShow", "retreat", "vipDinner", "sportingEvent",
}

func (e EventCategory) String() string {
	if int(e) < len(eventCategoryNames) {
		return eventCategoryNames[e]
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}

func (e EventCategory) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EventCategory) UnmarshalText(b []byte) error {
	v, err := ParseEventCategory(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEventCategory maps a string name back to its event category.
func ParseEventCategory(s string) (EventCategory, error) {
	for i, name := range eventCategoryNames {
		if name == s {
			return EventCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event category %q", s)
}

// Benefit is a one-shot reward owned by exactly one connection.
// Use only flips Used; used benefits survive expiry pruning as history.
type Benefit struct {
	ID          string      `json:"id"`
	Type        BenefitType `json:"type"`
	Description string      `json:"description"`
	Value       int64       `json:"value"`
	Used        bool        `json:"used"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// Expired reports whether the benefit's expiry has passed at the given
// game time. A zero ExpiresAt never expires.
func (b Benefit) Expired(now time.Time) bool {
	return !b.ExpiresAt.IsZero() && b.ExpiresAt.Before(now)
}

// Connection is a persistent NPC relationship.
//
// Strength is the category-specific score: rivalry intensity for rivals,
// mentorship depth for mentors, influence for celebrities/influencers,
// business success for the rest. Range 0–100.
type Connection struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Category        ConnectionCategory `json:"category"`
	Expertise       ExpertiseArea      `json:"expertise"`
	Level           int                `json:"relationship_level"` // 0–100, never decreases
	Status          ConnectionStatus   `json:"status"`
	PendingMeeting  bool               `json:"pending_meeting"`
	Benefits        []Benefit          `json:"benefits"`
	Strength        int                `json:"strength"`
	LastInteraction time.Time          `json:"last_interaction"`
}

// EventPerks is the static payoff shape of an event. It is not consumed
// at attendance; it parameterizes the attendance outcome.
type EventPerks struct {
	NetworkingPotential  int    `json:"networking_potential"`
	ReputationGain       int    `json:"reputation_gain"`
	PotentialConnections int    `json:"potential_connections"`
	SkillBoost           string `json:"skill_boost,omitempty"`
	SkillBoostAmount     int    `json:"skill_boost_amount,omitempty"`
}

// SocialEvent is a time-boxed opportunity. Attended is terminal: an
// attended event is immutable history and excluded from live queries.
type SocialEvent struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Category        EventCategory `json:"category"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	AvailableUntil  time.Time     `json:"available_until"`
	PrestigeRequired int          `json:"prestige_required"`
	EntryFee        int64         `json:"entry_fee"`
	Reserved        bool          `json:"reserved"`
	Attended        bool          `json:"attended"`
	Perks           EventPerks    `json:"perks"`
}
