// Package history persists one record per turn to SQLite for offline
// review of a match's decisions. Recording is optional: the bot runs with
// the nop recorder unless a database path is configured.
package history

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// TurnRecord is one turn's decision, flattened for storage.
type TurnRecord struct {
	MatchID       string `db:"match_id"`
	Step          int    `db:"step"`
	MyScore       int    `db:"my_score"`
	FoeScore      int    `db:"foe_score"`
	DisruptRegion int    `db:"disrupt_region"` // -1 when no disruption
	PredictedInk  bool   `db:"predicted_ink"`
	Builds        string `db:"builds"` // comma-separated "from-to" town pairs
	Rendered      string `db:"rendered"`
}

// Recorder receives one record per turn.
type Recorder interface {
	Record(TurnRecord) error
	Close() error
}

type nopRecorder struct{}

func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) Record(TurnRecord) error { return nil }
func (nopRecorder) Close() error            { return nil }

// Store is a SQLite-backed Recorder.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		match_id TEXT NOT NULL,
		step INTEGER NOT NULL,
		my_score INTEGER NOT NULL,
		foe_score INTEGER NOT NULL,
		disrupt_region INTEGER NOT NULL,
		predicted_ink INTEGER NOT NULL,
		builds TEXT NOT NULL,
		rendered TEXT NOT NULL,
		PRIMARY KEY (match_id, step)
	);`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *Store) Record(rec TurnRecord) error {
	_, err := s.conn.NamedExec(`
		INSERT INTO turns (match_id, step, my_score, foe_score, disrupt_region, predicted_ink, builds, rendered)
		VALUES (:match_id, :step, :my_score, :foe_score, :disrupt_region, :predicted_ink, :builds, :rendered)`,
		rec)
	return err
}

// Turns returns a match's records in step order.
func (s *Store) Turns(matchID string) ([]TurnRecord, error) {
	var records []TurnRecord
	err := s.conn.Select(&records,
		`SELECT match_id, step, my_score, foe_score, disrupt_region, predicted_ink, builds, rendered
		 FROM turns WHERE match_id = ? ORDER BY step`, matchID)
	return records, err
}
