// Package persistence provides SQLite-based mind snapshot storage.
// A saved mind round-trips exactly: experiences, norm rules, trait
// vectors, mood, and the tick counter all restore to the values they
// held at save time.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/kama-sona/internal/mind"
	"github.com/talgya/kama-sona/internal/personality"
)

// DB wraps a SQLite connection for mind snapshot persistence.
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
	CREATE TABLE IF NOT EXISTS experiences (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		reward REAL NOT NULL,
		action_json TEXT NOT NULL,
		snapshot_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS norm_rules (
		rule_id TEXT PRIMARY KEY,
		weight REAL NOT NULL,
		confidence REAL NOT NULL,
		observations INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mind_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_experiences_tick ON experiences(tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// HasMind reports whether a saved mind snapshot exists.
func (db *DB) HasMind() bool {
	_, err := db.GetMeta("tick")
	return err == nil
}

// AgentID returns the stable agent identity, generating and storing a
// fresh UUID on first use.
func (db *DB) AgentID() (uuid.UUID, error) {
	if v, err := db.GetMeta("agent_id"); err == nil {
		return uuid.Parse(v)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}

	id := uuid.New()
	if err := db.SetMeta("agent_id", id.String()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// SaveMind writes a full mind snapshot (full replace).
func (db *DB) SaveMind(st mind.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM experiences"); err != nil {
		return err
	}
	stmt, err := tx.Preparex(`INSERT INTO experiences
		(tick, reward, action_json, snapshot_json) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, exp := range st.Experiences {
		actionJSON, err := json.Marshal(exp.Action)
		if err != nil {
			return fmt.Errorf("marshal action: %w", err)
		}
		snapJSON, err := json.Marshal(exp.Snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if _, err := stmt.Exec(exp.Tick, exp.Reward, string(actionJSON), string(snapJSON)); err != nil {
			return fmt.Errorf("insert experience at tick %d: %w", exp.Tick, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM norm_rules"); err != nil {
		return err
	}
	for id, rule := range st.Norms {
		_, err := tx.Exec(
			"INSERT INTO norm_rules (rule_id, weight, confidence, observations) VALUES (?, ?, ?, ?)",
			id, rule.Weight, rule.Confidence, rule.Observations,
		)
		if err != nil {
			return fmt.Errorf("insert rule %q: %w", id, err)
		}
	}

	traitsJSON, err := json.Marshal(st.Traits)
	if err != nil {
		return fmt.Errorf("marshal traits: %w", err)
	}
	baselineJSON, err := json.Marshal(st.Baseline)
	if err != nil {
		return fmt.Errorf("marshal baseline: %w", err)
	}
	meta := map[string]string{
		"tick":     strconv.FormatUint(st.Tick, 10),
		"mood":     strconv.FormatFloat(st.Mood, 'g', -1, 64),
		"traits":   string(traitsJSON),
		"baseline": string(baselineJSON),
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT OR REPLACE INTO mind_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("save meta %q: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("mind snapshot saved",
		"tick", st.Tick,
		"experiences", len(st.Experiences),
		"rules", len(st.Norms),
	)
	return nil
}

// LoadMind reads the saved mind snapshot.
func (db *DB) LoadMind() (mind.State, error) {
	var st mind.State

	tickStr, err := db.GetMeta("tick")
	if err != nil {
		return st, fmt.Errorf("no saved mind: %w", err)
	}
	if st.Tick, err = strconv.ParseUint(tickStr, 10, 64); err != nil {
		return st, fmt.Errorf("parse tick: %w", err)
	}
	moodStr, err := db.GetMeta("mood")
	if err != nil {
		return st, err
	}
	if st.Mood, err = strconv.ParseFloat(moodStr, 64); err != nil {
		return st, fmt.Errorf("parse mood: %w", err)
	}
	if err := db.getMetaJSON("traits", &st.Traits); err != nil {
		return st, err
	}
	if err := db.getMetaJSON("baseline", &st.Baseline); err != nil {
		return st, err
	}

	rows, err := db.conn.Queryx("SELECT tick, reward, action_json, snapshot_json FROM experiences ORDER BY seq")
	if err != nil {
		return st, fmt.Errorf("load experiences: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var exp mind.Experience
		var actionJSON, snapJSON string
		if err := rows.Scan(&exp.Tick, &exp.Reward, &actionJSON, &snapJSON); err != nil {
			return st, err
		}
		if err := json.Unmarshal([]byte(actionJSON), &exp.Action); err != nil {
			return st, fmt.Errorf("unmarshal action: %w", err)
		}
		if err := json.Unmarshal([]byte(snapJSON), &exp.Snapshot); err != nil {
			return st, fmt.Errorf("unmarshal snapshot: %w", err)
		}
		st.Experiences = append(st.Experiences, exp)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	st.Norms = make(map[string]mind.NormRule)
	ruleRows, err := db.conn.Queryx("SELECT rule_id, weight, confidence, observations FROM norm_rules")
	if err != nil {
		return st, fmt.Errorf("load rules: %w", err)
	}
	defer ruleRows.Close()
	for ruleRows.Next() {
		var id string
		var rule mind.NormRule
		if err := ruleRows.Scan(&id, &rule.Weight, &rule.Confidence, &rule.Observations); err != nil {
			return st, err
		}
		st.Norms[id] = rule
	}
	return st, ruleRows.Err()
}

func (db *DB) getMetaJSON(key string, out any) error {
	v, err := db.GetMeta(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(v), out); err != nil {
		return fmt.Errorf("unmarshal meta %q: %w", key, err)
	}
	return nil
}

// SetMeta stores a key-value pair in mind metadata.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO mind_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM mind_meta WHERE key = ?", key)
	return value, err
}

// SavedBaseline returns the persisted baseline trait vector, used to
// reconstruct the mind with the same anchor on resume.
func (db *DB) SavedBaseline() (personality.TraitVector, error) {
	var t personality.TraitVector
	err := db.getMetaJSON("baseline", &t)
	return t, err
}
