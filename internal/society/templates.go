// Static archetype catalogs for connections and events. Pure data;
// the generator copies immutable fields and randomizes the ranges.
package society

// ConnectionTemplate describes a connection archetype. MinPrestige is
// the eligibility floor; the generator relaxes it rather than failing.
type ConnectionTemplate struct {
	Name        string
	Expertise   ExpertiseArea
	MinPrestige int
}

var connectionTemplates = map[ConnectionCategory][]ConnectionTemplate{
	CategoryMentor: {
		{Name: "Eleanor Hartwell", Expertise: ExpertiseFinance, MinPrestige: 0},
		{Name: "Raj Venkatesan", Expertise: ExpertiseTechnology, MinPrestige: 2},
		{Name: "Dominic Ferraro", Expertise: ExpertiseRealEstate, MinPrestige: 4},
		{Name: "Grace Okafor", Expertise: ExpertiseConsulting, MinPrestige: 8},
	},
	CategoryRival: {
		{Name: "Preston Vale", Expertise: ExpertiseFinance, MinPrestige: 0},
		{Name: "Cassandra Locke", Expertise: ExpertiseTechnology, MinPrestige: 3},
		{Name: "Viktor Aldana", Expertise: ExpertiseRealEstate, MinPrestige: 6},
	},
	CategoryBusinessContact: {
		{Name: "Miriam Castellanos", Expertise: ExpertiseRetail, MinPrestige: 0},
		{Name: "Owen Breckenridge", Expertise: ExpertiseManufacturing, MinPrestige: 0},
		{Name: "Sylvia Nordqvist", Expertise: ExpertiseHospitality, MinPrestige: 2},
		{Name: "Theo Marchetti", Expertise: ExpertiseConsulting, MinPrestige: 5},
	},
	CategoryInvestor: {
		{Name: "Harriet Blackwood", Expertise: ExpertiseFinance, MinPrestige: 2},
		{Name: "Jun-seo Park", Expertise: ExpertiseTechnology, MinPrestige: 5},
		{Name: "Leonard Ashby", Expertise: ExpertiseRealEstate, MinPrestige: 8},
	},
	CategoryIndustry: {
		{Name: "Priya Raghunathan", Expertise: ExpertiseHealthcare, MinPrestige: 0},
		{Name: "Emil Sorensen", Expertise: ExpertiseManufacturing, MinPrestige: 1},
		{Name: "Dana Whitfield", Expertise: ExpertiseEducation, MinPrestige: 3},
		{Name: "Marco Belluci", Expertise: ExpertiseCreative, MinPrestige: 4},
	},
	CategoryCelebrity: {
		{Name: "Aurora Deveraux", Expertise: ExpertiseCreative, MinPrestige: 10},
		{Name: "Blake Sterling", Expertise: ExpertiseRetail, MinPrestige: 12},
	},
	CategoryInfluencer: {
		{Name: "Zoe Lindqvist", Expertise: ExpertiseCreative, MinPrestige: 6},
		{Name: "Kai Moreno", Expertise: ExpertiseTechnology, MinPrestige: 9},
	},
}

// EventTemplate describes an event archetype with its randomizable
// numeric ranges (fee drawn uniformly in [FeeMin, FeeMax]).
type EventTemplate struct {
	Name        string
	Description string
	MinPrestige int
	FeeMin      int64
	FeeMax      int64
	Perks       EventPerks
}

var eventTemplates = map[EventCategory][]EventTemplate{
	EventCharity: {
		{Name: "Riverside Charity Auction", Description: "An evening auction benefiting the children's hospital.",
			MinPrestige: 0, FeeMin: 500, FeeMax: 2000,
			Perks: EventPerks{NetworkingPotential: 30, ReputationGain: 3, PotentialConnections: 1}},
	},
	EventBusiness: {
		{Name: "Quarterly Founders Mixer", Description: "Local founders and operators trading war stories.",
			MinPrestige: 0, FeeMin: 200, FeeMax: 800,
			Perks: EventPerks{NetworkingPotential: 40, ReputationGain: 1, PotentialConnections: 2}},
		{Name: "Capital Markets Breakfast", Description: "Early-morning briefing with fund managers.",
			MinPrestige: 5, FeeMin: 1000, FeeMax: 3000,
			Perks: EventPerks{NetworkingPotential: 55, ReputationGain: 2, PotentialConnections: 2}},
	},
	EventGala: {
		{Name: "Winter Gala at the Meridian", Description: "Black-tie gala in the Meridian ballroom.",
			MinPrestige: 8, FeeMin: 3000, FeeMax: 8000,
			Perks: EventPerks{NetworkingPotential: 60, ReputationGain: 4, PotentialConnections: 3}},
	},
	EventConference: {
		{Name: "Frontier Industries Summit", Description: "Two days of keynotes and hallway deals.",
			MinPrestige: 2, FeeMin: 800, FeeMax: 2500,
			Perks: EventPerks{NetworkingPotential: 50, ReputationGain: 2, PotentialConnections: 3,
				SkillBoost: "strategy", SkillBoostAmount: 2}},
	},
	EventClub: {
		{Name: "The Ivory Room", Description: "Members-only club night, invitation extended.",
			MinPrestige: 6, FeeMin: 1500, FeeMax: 4000,
			Perks: EventPerks{NetworkingPotential: 35, ReputationGain: 2, PotentialConnections: 1}},
	},
	EventParty: {
		{Name: "Rooftop Launch Party", Description: "A promoter's rooftop party downtown.",
			MinPrestige: 0, FeeMin: 100, FeeMax: 500,
			Perks: EventPerks{NetworkingPotential: 25, ReputationGain: 1, PotentialConnections: 1}},
	},
	EventNetworking: {
		{Name: "Chamber Networking Night", Description: "Open networking hosted by the chamber of commerce.",
			MinPrestige: 0, FeeMin: 50, FeeMax: 300,
			Perks: EventPerks{NetworkingPotential: 45, ReputationGain: 1, PotentialConnections: 2}},
		{Name: "Executive Roundtable", Description: "Curated table of twelve senior operators.",
			MinPrestige: 7, FeeMin: 1200, FeeMax: 3500,
			Perks: EventPerks{NetworkingPotential: 65, ReputationGain: 3, PotentialConnections: 3}},
	},
	EventWorkshop: {
		{Name: "Negotiation Masterclass", Description: "Hands-on workshop with a veteran dealmaker.",
			MinPrestige: 1, FeeMin: 400, FeeMax: 1200,
			Perks: EventPerks{NetworkingPotential: 30, ReputationGain: 1, PotentialConnections: 1,
				SkillBoost: "negotiation", SkillBoostAmount: 3}},
	},
	EventSeminar: {
		{Name: "Tax Strategy Seminar", Description: "An afternoon on structures and shelters.",
			MinPrestige: 0, FeeMin: 150, FeeMax: 600,
			Perks: EventPerks{NetworkingPotential: 20, ReputationGain: 1, PotentialConnections: 1,
				SkillBoost: "finance", SkillBoostAmount: 2}},
	},
	EventAward: {
		{Name: "Entrepreneur of the Year Dinner", Description: "Awards dinner for the regional business press.",
			MinPrestige: 10, FeeMin: 2500, FeeMax: 6000,
			Perks: EventPerks{NetworkingPotential: 55, ReputationGain: 5, PotentialConnections: 2}},
	},
	EventProductLaunch: {
		{Name: "Flagship Product Unveiling", Description: "Invite-only reveal with press in attendance.",
			MinPrestige: 4, FeeMin: 600, FeeMax: 2000,
			Perks: EventPerks{NetworkingPotential: 40, ReputationGain: 2, PotentialConnections: 2}},
	},
	EventTradeShow: {
		{Name: "Interstate Trade Expo", Description: "Three halls of booths and buyers.",
			MinPrestige: 1, FeeMin: 300, FeeMax: 1000,
			Perks: EventPerks{NetworkingPotential: 45, ReputationGain: 1, PotentialConnections: 3}},
	},
	EventRetreat: {
		{Name: "Founders Mountain Retreat", Description: "A long weekend off-grid with twenty founders.",
			MinPrestige: 9, FeeMin: 4000, FeeMax: 10000,
			Perks: EventPerks{NetworkingPotential: 70, ReputationGain: 3, PotentialConnections: 3,
				SkillBoost: "leadership", SkillBoostAmount: 4}},
	},
	EventVIPDinner: {
		{Name: "Private Chef's Table", Description: "Eight seats, one chef, no menus.",
			MinPrestige: 12, FeeMin: 5000, FeeMax: 12000,
			Perks: EventPerks{NetworkingPotential: 75, ReputationGain: 4, PotentialConnections: 2}},
	},
	EventSporting: {
		{Name: "Championship Box Seats", Description: "A corporate box at the championship final.",
			MinPrestige: 5, FeeMin: 2000, FeeMax: 5000,
			Perks: EventPerks{NetworkingPotential: 35, ReputationGain: 2, PotentialConnections: 2}},
	},
}

// eventCategoryWeights drives the frequency-weighted category draw.
// Business-oriented categories turn up two to three times as often as
// the niche ones.
var eventCategoryWeights = map[EventCategory]int{
	EventBusiness:      6,
	EventNetworking:    6,
	EventConference:    4,
	EventTradeShow:     4,
	EventWorkshop:      3,
	EventSeminar:       3,
	EventCharity:       3,
	EventProductLaunch: 3,
	EventGala:          2,
	EventVIPDinner:     2,
	EventSporting:      2,
	EventRetreat:       2,
	EventClub:          2,
	EventParty:         2,
	EventAward:         2,
}

// benefitTypesByCategory maps a connection category to the benefit
// types it can yield.
var benefitTypesByCategory = map[ConnectionCategory][]BenefitType{
	CategoryMentor:          {BenefitSkillBoost, BenefitNetworkIntroduction, BenefitBusinessOpportunity, BenefitReputationBoost},
	CategoryRival:           {BenefitMarketIntelligence, BenefitRegulationInsight},
	CategoryBusinessContact: {BenefitBusinessOpportunity, BenefitMarketIntelligence, BenefitNetworkIntroduction},
	CategoryInvestor:        {BenefitInvestmentTip, BenefitBusinessOpportunity, BenefitMarketIntelligence},
	CategoryIndustry:        {BenefitRegulationInsight, BenefitMarketIntelligence, BenefitSkillBoost},
	CategoryCelebrity:       {BenefitReputationBoost, BenefitLifestyleDiscount, BenefitNetworkIntroduction},
	CategoryInfluencer:      {BenefitReputationBoost, BenefitLifestyleDiscount, BenefitMarketIntelligence},
}

// benefitValueCategoryMult scales benefit value by connection category.
var benefitValueCategoryMult = map[ConnectionCategory]float64{
	CategoryInvestor:        3.0,
	CategoryMentor:          2.5,
	CategoryBusinessContact: 2.0,
}

// benefitValueExpertiseMult scales benefit value by expertise area.
var benefitValueExpertiseMult = map[ExpertiseArea]float64{
	ExpertiseFinance:    1.5,
	ExpertiseTechnology: 1.4,
	ExpertiseRealEstate: 1.3,
}

// benefitDescriptions holds the templated description strings per type.
// Placeholders: first %s = connection name, %s after = formatted value.
var benefitDescriptions = map[BenefitType][]string{
	BenefitInvestmentTip: {
		"%s tips you off to an undervalued position worth around %s.",
		"%s forwards a research note before it goes wide, roughly %s upside.",
	},
	BenefitBusinessOpportunity: {
		"%s brings you into a deal they can't take alone, worth about %s.",
		"%s offers you first look at an acquisition target valued near %s.",
	},
	BenefitSkillBoost: {
		"%s spends an afternoon coaching you, the kind of session others pay %s for.",
	},
	BenefitLifestyleDiscount: {
		"%s gets you the house rate, saving you about %s.",
	},
	BenefitRegulationInsight: {
		"%s explains a regulatory change before it lands, positioning worth %s.",
	},
	BenefitMarketIntelligence: {
		"%s shares competitor numbers nobody outside the room has seen, worth %s.",
		"%s passes along channel chatter that moves your pricing, worth about %s.",
	},
	BenefitNetworkIntroduction: {
		"%s offers to introduce you to someone in their circle (favor valued at %s).",
	},
	BenefitReputationBoost: {
		"%s drops your name in the right company, exposure worth %s.",
	},
}
