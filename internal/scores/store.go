// Package scores records finished table sessions in an embedded DuckDB
// database and answers the High Scores and Continue queries.
package scores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/scores/migrate"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Session is one sitting at the table, from opening it to leaving it.
type Session struct {
	ID            int64
	Player        string
	StartedAt     time.Time
	EndedAt       time.Time
	Decks         int
	StartBankroll engine.Amount
	EndBankroll   engine.Amount
	PeakBankroll  engine.Amount
	Rounds        int
	Wins          int
	Losses        int
	Pushes        int
	Blackjacks    int
}

// Store manages the DuckDB connection.
type Store struct {
	db           *sql.DB
	dbPath       string
	QueryTimeout time.Duration
}

// NewStore opens or creates the score database. If dbPath is empty, an
// in-memory database is used.
func NewStore(dbPath string, queryTimeout ...time.Duration) (*Store, error) {
	dsn := ""
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
		dsn = dbPath
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	qt := 5 * time.Second
	if len(queryTimeout) > 0 && queryTimeout[0] > 0 {
		qt = queryTimeout[0]
	}

	s := &Store{db: db, dbPath: dbPath, QueryTimeout: qt}
	ctx, cancel := s.queryCtx()
	defer cancel()
	if _, err := migrate.NewRunner(db).Run(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating score db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) queryCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.QueryTimeout)
}

// RecordSession stores a finished session and returns its id.
func (s *Store) RecordSession(sess Session) (int64, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sessions (player, started_at, ended_at, decks,
			start_bankroll, end_bankroll, peak_bankroll,
			rounds, wins, losses, pushes, blackjacks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		sess.Player, sess.StartedAt.UTC(), sess.EndedAt.UTC(), sess.Decks,
		int64(sess.StartBankroll), int64(sess.EndBankroll), int64(sess.PeakBankroll),
		sess.Rounds, sess.Wins, sess.Losses, sess.Pushes, sess.Blackjacks,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting session: %w", err)
	}
	return id, nil
}

const sessionColumns = `id, player, started_at, ended_at, decks,
	start_bankroll, end_bankroll, peak_bankroll,
	rounds, wins, losses, pushes, blackjacks`

// TopSessions returns up to limit sessions ordered by peak bankroll, earliest
// first on ties.
func (s *Store) TopSessions(limit int) ([]Session, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY peak_bankroll DESC, ended_at ASC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// LastSession returns the most recently finished session.
func (s *Store) LastSession() (Session, bool, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY ended_at DESC, id DESC
		LIMIT 1`)
	if err != nil {
		return Session{}, false, fmt.Errorf("querying last session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return Session{}, false, rows.Err()
	}
	sess, err := scanSession(rows)
	if err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

func scanSession(rows *sql.Rows) (Session, error) {
	var (
		sess                 Session
		start, end, peak     int64
		wins, losses, pushes sql.NullInt64
		blackjacks           sql.NullInt64
	)
	err := rows.Scan(&sess.ID, &sess.Player, &sess.StartedAt, &sess.EndedAt, &sess.Decks,
		&start, &end, &peak,
		&sess.Rounds, &wins, &losses, &pushes, &blackjacks)
	if err != nil {
		return Session{}, fmt.Errorf("scanning session: %w", err)
	}
	sess.StartBankroll = engine.Amount(start)
	sess.EndBankroll = engine.Amount(end)
	sess.PeakBankroll = engine.Amount(peak)
	sess.Wins = int(wins.Int64)
	sess.Losses = int(losses.Int64)
	sess.Pushes = int(pushes.Int64)
	sess.Blackjacks = int(blackjacks.Int64)
	return sess, nil
}
