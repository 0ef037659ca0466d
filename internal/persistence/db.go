// Package persistence provides SQLite-based engine state storage.
// Saves are full-replace inside a transaction; nested collections ride
// along as json columns and scalars live in a meta table, so a load
// reproduces the exact observable state.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/high-society/internal/society"
)

// DB wraps a SQLite connection for engine state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS connections (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		expertise TEXT NOT NULL,
		relationship_level INTEGER NOT NULL,
		status TEXT NOT NULL,
		pending_meeting INTEGER NOT NULL,
		strength INTEGER NOT NULL,
		last_interaction TEXT NOT NULL,
		benefits_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		scheduled_at TEXT NOT NULL,
		available_until TEXT NOT NULL,
		prestige_required INTEGER NOT NULL,
		entry_fee INTEGER NOT NULL,
		reserved INTEGER NOT NULL,
		attended INTEGER NOT NULL,
		perks_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS engine_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_attended ON events(attended);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SavedState is everything a restart needs to resume the game.
type SavedState struct {
	Engine   society.State
	Wealth   int64
	GameTime time.Time
}

// SaveState writes the full engine state (full replace).
func (db *DB) SaveState(st society.State, wealthBalance int64, gameTime time.Time) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM connections"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM events"); err != nil {
		return err
	}

	connStmt, err := tx.Preparex(`INSERT INTO connections
		(id, name, category, expertise, relationship_level, status,
		 pending_meeting, strength, last_interaction, benefits_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer connStmt.Close()

	for _, c := range st.Connections {
		benefitsJSON, err := json.Marshal(c.Benefits)
		if err != nil {
			return fmt.Errorf("marshal benefits for %s: %w", c.ID, err)
		}
		_, err = connStmt.Exec(
			c.ID, c.Name, c.Category.String(), c.Expertise.String(),
			c.Level, c.Status.String(), boolToInt(c.PendingMeeting),
			c.Strength, c.LastInteraction.Format(time.RFC3339Nano),
			string(benefitsJSON),
		)
		if err != nil {
			return fmt.Errorf("insert connection %s: %w", c.ID, err)
		}
	}

	evStmt, err := tx.Preparex(`INSERT INTO events
		(id, name, description, category, scheduled_at, available_until,
		 prestige_required, entry_fee, reserved, attended, perks_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer evStmt.Close()

	for _, ev := range st.Events {
		perksJSON, err := json.Marshal(ev.Perks)
		if err != nil {
			return fmt.Errorf("marshal perks for %s: %w", ev.ID, err)
		}
		_, err = evStmt.Exec(
			ev.ID, ev.Name, ev.Description, ev.Category.String(),
			ev.ScheduledAt.Format(time.RFC3339Nano),
			ev.AvailableUntil.Format(time.RFC3339Nano),
			ev.PrestigeRequired, ev.EntryFee,
			boolToInt(ev.Reserved), boolToInt(ev.Attended),
			string(perksJSON),
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", ev.ID, err)
		}
	}

	missedJSON, err := json.Marshal(st.MissedEvents)
	if err != nil {
		return fmt.Errorf("marshal missed events: %w", err)
	}
	meta := map[string]string{
		"social_capital":   strconv.Itoa(st.Capital),
		"networking_level": strconv.Itoa(st.NetworkingLevel),
		"last_activity":    st.LastActivity.Format(time.RFC3339Nano),
		"last_sweep_month": strconv.Itoa(st.LastSweepMonth),
		"missed_events":    string(missedJSON),
		"wealth_balance":   strconv.FormatInt(wealthBalance, 10),
		"game_time":        gameTime.Format(time.RFC3339Nano),
	}
	for key, value := range meta {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO engine_meta (key, value) VALUES (?, ?)",
			key, value,
		); err != nil {
			return fmt.Errorf("save meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Debug("engine state saved",
		"connections", len(st.Connections),
		"events", len(st.Events),
	)
	return nil
}

// HasState reports whether a saved game exists.
func (db *DB) HasState() bool {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM engine_meta WHERE key = 'game_time'")
	return err == nil
}

// LoadState reads the full saved state back.
func (db *DB) LoadState() (*SavedState, error) {
	var saved SavedState

	rows, err := db.conn.Queryx(`SELECT id, name, category, expertise,
		relationship_level, status, pending_meeting, strength,
		last_interaction, benefits_json FROM connections ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                             society.Connection
			category, expertise, status   string
			pending                       int
			lastInteraction, benefitsJSON string
		)
		if err := rows.Scan(&c.ID, &c.Name, &category, &expertise,
			&c.Level, &status, &pending, &c.Strength,
			&lastInteraction, &benefitsJSON); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		if c.Category, err = society.ParseConnectionCategory(category); err != nil {
			return nil, err
		}
		if c.Expertise, err = society.ParseExpertiseArea(expertise); err != nil {
			return nil, err
		}
		if c.Status, err = society.ParseConnectionStatus(status); err != nil {
			return nil, err
		}
		c.PendingMeeting = pending != 0
		if c.LastInteraction, err = time.Parse(time.RFC3339Nano, lastInteraction); err != nil {
			return nil, fmt.Errorf("parse last_interaction: %w", err)
		}
		if err := json.Unmarshal([]byte(benefitsJSON), &c.Benefits); err != nil {
			return nil, fmt.Errorf("unmarshal benefits for %s: %w", c.ID, err)
		}
		saved.Engine.Connections = append(saved.Engine.Connections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	evRows, err := db.conn.Queryx(`SELECT id, name, description, category,
		scheduled_at, available_until, prestige_required, entry_fee,
		reserved, attended, perks_json FROM events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer evRows.Close()

	for evRows.Next() {
		var (
			ev                                society.SocialEvent
			category, scheduled, until, perks string
			reserved, attended                int
		)
		if err := evRows.Scan(&ev.ID, &ev.Name, &ev.Description, &category,
			&scheduled, &until, &ev.PrestigeRequired, &ev.EntryFee,
			&reserved, &attended, &perks); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if ev.Category, err = society.ParseEventCategory(category); err != nil {
			return nil, err
		}
		if ev.ScheduledAt, err = time.Parse(time.RFC3339Nano, scheduled); err != nil {
			return nil, fmt.Errorf("parse scheduled_at: %w", err)
		}
		if ev.AvailableUntil, err = time.Parse(time.RFC3339Nano, until); err != nil {
			return nil, fmt.Errorf("parse available_until: %w", err)
		}
		ev.Reserved = reserved != 0
		ev.Attended = attended != 0
		if err := json.Unmarshal([]byte(perks), &ev.Perks); err != nil {
			return nil, fmt.Errorf("unmarshal perks for %s: %w", ev.ID, err)
		}
		saved.Engine.Events = append(saved.Engine.Events, ev)
	}
	if err := evRows.Err(); err != nil {
		return nil, err
	}

	if saved.Engine.Capital, err = db.metaInt("social_capital"); err != nil {
		return nil, err
	}
	if saved.Engine.NetworkingLevel, err = db.metaInt("networking_level"); err != nil {
		return nil, err
	}
	if saved.Engine.LastSweepMonth, err = db.metaInt("last_sweep_month"); err != nil {
		return nil, err
	}
	if saved.Engine.LastActivity, err = db.metaTime("last_activity"); err != nil {
		return nil, err
	}
	if saved.GameTime, err = db.metaTime("game_time"); err != nil {
		return nil, err
	}

	wealthStr, err := db.meta("wealth_balance")
	if err != nil {
		return nil, err
	}
	if saved.Wealth, err = strconv.ParseInt(wealthStr, 10, 64); err != nil {
		return nil, fmt.Errorf("parse wealth_balance: %w", err)
	}

	missedStr, err := db.meta("missed_events")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(missedStr), &saved.Engine.MissedEvents); err != nil {
		return nil, fmt.Errorf("unmarshal missed_events: %w", err)
	}

	return &saved, nil
}

func (db *DB) meta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM engine_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("meta key %s missing", key)
	}
	return value, err
}

func (db *DB) metaInt(key string) (int, error) {
	s, err := db.meta(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse meta %s: %w", key, err)
	}
	return n, nil
}

func (db *DB) metaTime(key string) (time.Time, error) {
	s, err := db.meta(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse meta %s: %w", key, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
