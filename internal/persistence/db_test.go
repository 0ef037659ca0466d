package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/high-society/internal/society"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleState() society.State {
	base := time.Date(2001, time.March, 5, 8, 0, 0, 0, time.UTC)
	return society.State{
		Connections: []society.Connection{
			{
				ID:       "c1",
				Name:     "Harriet Blackwood",
				Category: society.CategoryInvestor,

				Expertise:       society.ExpertiseFinance,
				Level:           62,
				Status:          society.StatusFriend,
				PendingMeeting:  true,
				Strength:        38,
				LastInteraction: base.Add(-36 * time.Hour),
				Benefits: []society.Benefit{
					{
						ID:          "b1",
						Type:        society.BenefitInvestmentTip,
						Description: "Harriet Blackwood tips you off.",
						Value:       27000,
						Used:        false,
						ExpiresAt:   base.AddDate(0, 0, 30),
					},
					{
						ID:          "b2",
						Type:        society.BenefitSkillBoost,
						Description: "Spent session.",
						Value:       5000,
						Used:        true,
						ExpiresAt:   base.AddDate(0, 0, 12),
					},
				},
			},
			{
				ID:              "c2",
				Name:            "Preston Vale",
				Category:        society.CategoryRival,
				Expertise:       society.ExpertiseTechnology,
				Level:           41,
				Status:          society.StatusAssociate,
				Strength:        77,
				LastInteraction: base,
			},
		},
		Events: []society.SocialEvent{
			{
				ID:               "e1",
				Name:             "Founders Gala",
				Description:      "Annual gathering.",
				Category:         society.EventGala,
				ScheduledAt:      base.AddDate(0, 0, 9),
				AvailableUntil:   base.AddDate(0, 0, 10),
				PrestigeRequired: 5,
				EntryFee:         2500,
				Reserved:         true,
				Perks: society.EventPerks{
					NetworkingPotential:  55,
					ReputationGain:       2,
					PotentialConnections: 3,
				},
			},
			{
				ID:             "e2",
				Name:           "Old Regatta",
				Description:    "Already done.",
				Category:       society.EventSporting,
				ScheduledAt:    base.AddDate(0, 0, -3),
				AvailableUntil: base.AddDate(0, 0, -2),
				EntryFee:       100,
				Attended:       true,
				Perks:          society.EventPerks{NetworkingPotential: 10},
			},
		},
		Capital:         135,
		NetworkingLevel: 23,
		LastActivity:    base.Add(-90 * time.Minute),
		LastSweepMonth:  2001*12 + int(time.March),
		MissedEvents:    []string{"Charity Auction"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	st := sampleState()
	gameTime := time.Date(2001, time.March, 5, 14, 30, 0, 0, time.UTC)

	require.NoError(t, db.SaveState(st, 48250, gameTime))
	require.True(t, db.HasState())

	loaded, err := db.LoadState()
	require.NoError(t, err)

	assert.Equal(t, st, loaded.Engine)
	assert.Equal(t, int64(48250), loaded.Wealth)
	assert.True(t, gameTime.Equal(loaded.GameTime))
}

func TestSaveIsFullReplace(t *testing.T) {
	db := openTestDB(t)
	st := sampleState()
	gameTime := time.Date(2001, time.March, 5, 14, 30, 0, 0, time.UTC)
	require.NoError(t, db.SaveState(st, 1000, gameTime))

	// Second save with a smaller state must not leave stale rows behind.
	st.Connections = st.Connections[:1]
	st.Events = nil
	st.Capital = 10
	require.NoError(t, db.SaveState(st, 2000, gameTime.Add(time.Hour)))

	loaded, err := db.LoadState()
	require.NoError(t, err)
	assert.Len(t, loaded.Engine.Connections, 1)
	assert.Empty(t, loaded.Engine.Events)
	assert.Equal(t, 10, loaded.Engine.Capital)
	assert.Equal(t, int64(2000), loaded.Wealth)
}

func TestHasStateOnFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	assert.False(t, db.HasState())
}

func TestLoadPreservesInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	st := sampleState()
	require.NoError(t, db.SaveState(st, 0, time.Date(2001, time.March, 5, 8, 0, 0, 0, time.UTC)))

	loaded, err := db.LoadState()
	require.NoError(t, err)
	require.Len(t, loaded.Engine.Connections, 2)
	assert.Equal(t, "c1", loaded.Engine.Connections[0].ID)
	assert.Equal(t, "c2", loaded.Engine.Connections[1].ID)
	require.Len(t, loaded.Engine.Events, 2)
	assert.Equal(t, "e1", loaded.Engine.Events[0].ID)
	assert.Equal(t, "e2", loaded.Engine.Events[1].ID)
}
