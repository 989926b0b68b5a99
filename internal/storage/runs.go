package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/candy-maze/internal/game"
)

// Run describes one recorded game session.
type Run struct {
	ID        string
	Generator string
	Seed      uint64
	Rules     game.Rules
	StartedAt time.Time

	// Summary over the run's events.
	Events   int
	MaxRound int
	HiScore  int
}

// Entry is one journaled event and the state it produced.
type Entry struct {
	Seq     int
	Kind    string
	Payload []byte

	Round   int
	Time    int
	Points  int
	HiScore int
	X, Y    int
}

// Event decodes the entry's event.
func (e Entry) Event() (game.Event, error) {
	return game.UnmarshalEvent(e.Kind, e.Payload)
}

// Recorder appends events of a single run. It implements game.Journal and
// is meant to be fed by one engine loop.
type Recorder struct {
	store *Store
	runID string
	seq   int
}

// StartRun registers a new run and returns a recorder for its events.
func (s *Store) StartRun(generator string, seed uint64, rules game.Rules) (*Recorder, error) {
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode rules: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		"INSERT INTO runs (id, generator, seed, rules) VALUES (?, ?, ?, ?)",
		id, generator, int64(seed), string(rulesJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return &Recorder{store: s, runID: id}, nil
}

// RunID returns the ID of the run being recorded.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record stores ev and a summary of after.
func (r *Recorder) Record(ev game.Event, after game.Session) error {
	payload, err := game.MarshalEvent(ev)
	if err != nil {
		return err
	}

	r.seq++
	_, err = r.store.db.Exec(
		`INSERT INTO events
		 (run_id, seq, kind, payload, round, time, points, hi_score, x, y)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.runID, r.seq, ev.Kind(), string(payload),
		after.Round, after.Time, after.Points, after.HiScore,
		after.Current.X, after.Current.Y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save event %d: %w", r.seq, err)
	}
	return nil
}

const runColumns = `
	r.id, r.generator, r.seed, r.rules, r.started_at,
	COUNT(e.seq), COALESCE(MAX(e.round), 0), COALESCE(MAX(e.hi_score), 0)`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		seed      int64
		rulesJSON string
		startedAt any
	)
	if err := row.Scan(
		&run.ID, &run.Generator, &seed, &rulesJSON, &startedAt,
		&run.Events, &run.MaxRound, &run.HiScore,
	); err != nil {
		return Run{}, err
	}
	run.Seed = uint64(seed)
	run.StartedAt = parseTime(startedAt)
	if err := json.Unmarshal([]byte(rulesJSON), &run.Rules); err != nil {
		return Run{}, fmt.Errorf("storage: cannot decode rules of run %s: %w", run.ID, err)
	}
	return run, nil
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT`+runColumns+`
		 FROM runs r LEFT JOIN events e ON e.run_id = r.id
		 GROUP BY r.id
		 ORDER BY r.started_at DESC, r.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Run looks up a single run by ID.
func (s *Store) Run(id string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT`+runColumns+`
		 FROM runs r LEFT JOIN events e ON e.run_id = r.id
		 WHERE r.id = ?
		 GROUP BY r.id`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// Entries returns the events of a run in the order they were applied.
func (s *Store) Entries(runID string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT seq, kind, payload, round, time, points, hi_score, x, y
		 FROM events
		 WHERE run_id = ?
		 ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(
			&e.Seq, &e.Kind, &payload,
			&e.Round, &e.Time, &e.Points, &e.HiScore, &e.X, &e.Y,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Payload = []byte(payload)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRun removes a run and its events.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return tx.Commit()
}
