package tots

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	season TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 0,
	finalized INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS candidates (
	session_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	player_id TEXT NOT NULL,
	name TEXT NOT NULL,
	team_name TEXT NOT NULL,
	position TEXT NOT NULL,
	PRIMARY KEY (session_id, player_id)
);
CREATE TABLE IF NOT EXISTS votes (
	session_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	admin INTEGER NOT NULL,
	player_ids TEXT NOT NULL,
	submitted_at TEXT NOT NULL,
	PRIMARY KEY (session_id, user_id, admin)
);
CREATE TABLE IF NOT EXISTS results (
	session_id TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);`

// SQLiteStore is a Repository that survives restarts, for local development.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dsn and applies the schema.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// ":memory:" databases exist per connection
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListSessions(ctx context.Context) ([]tots.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, season, start_date, end_date, active, finalized, created_at FROM sessions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tots.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortSessions(out)
	return out, nil
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (tots.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, season, start_date, end_date, active, finalized, created_at FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tots.Session{}, ErrNotFound
	}
	return sess, err
}

func (s *SQLiteStore) SaveSession(ctx context.Context, sess tots.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, season, start_date, end_date, active, finalized, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, season = excluded.season,
			start_date = excluded.start_date, end_date = excluded.end_date,
			active = excluded.active, finalized = excluded.finalized`,
		sess.ID, sess.Name, sess.Season, formatTime(sess.StartDate), formatTime(sess.EndDate),
		sess.Active, sess.Finalized, formatTime(sess.CreatedAt))
	return err
}

func (s *SQLiteStore) ListCandidates(ctx context.Context, sessionID string) ([]tots.Candidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, name, team_name, position FROM candidates WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tots.Candidate
	for rows.Next() {
		var (
			c        tots.Candidate
			position string
		)
		if err := rows.Scan(&c.PlayerID, &c.Name, &c.TeamName, &position); err != nil {
			return nil, err
		}
		c.Position = players.Position(position)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveCandidates(ctx context.Context, sessionID string, candidates []tots.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	for i, c := range candidates {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO candidates (session_id, seq, player_id, name, team_name, position) VALUES (?, ?, ?, ?, ?, ?)`,
			sessionID, i, c.PlayerID, c.Name, c.TeamName, string(c.Position)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) SaveVote(ctx context.Context, v tots.Vote) error {
	ids, err := json.Marshal(v.PlayerIDs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO votes (session_id, user_id, admin, player_ids, submitted_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, user_id, admin) DO UPDATE SET
			player_ids = excluded.player_ids, submitted_at = excluded.submitted_at`,
		v.SessionID, v.UserID, v.Admin, string(ids), formatTime(v.SubmittedAt))
	return err
}

func (s *SQLiteStore) GetVote(ctx context.Context, sessionID, userID string, admin bool) (tots.Vote, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT session_id, user_id, admin, player_ids, submitted_at FROM votes WHERE session_id = ? AND user_id = ? AND admin = ?`,
		sessionID, userID, admin)
	v, err := scanVote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tots.Vote{}, ErrNotFound
	}
	return v, err
}

func (s *SQLiteStore) ListVotes(ctx context.Context, sessionID string) ([]tots.Vote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, user_id, admin, player_ids, submitted_at FROM votes WHERE session_id = ? ORDER BY submitted_at, user_id`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tots.Vote
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveResults(ctx context.Context, r tots.Results) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (session_id, payload) VALUES (?, ?)
		ON CONFLICT(session_id) DO UPDATE SET payload = excluded.payload`,
		r.SessionID, string(payload))
	return err
}

func (s *SQLiteStore) GetResults(ctx context.Context, sessionID string) (tots.Results, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE session_id = ?`, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return tots.Results{}, ErrNotFound
	}
	if err != nil {
		return tots.Results{}, err
	}
	var r tots.Results
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return tots.Results{}, err
	}
	return r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (tots.Session, error) {
	var (
		sess                tots.Session
		start, end, created string
	)
	if err := row.Scan(&sess.ID, &sess.Name, &sess.Season, &start, &end, &sess.Active, &sess.Finalized, &created); err != nil {
		return tots.Session{}, err
	}
	var err error
	if sess.StartDate, err = parseTime(start); err != nil {
		return tots.Session{}, err
	}
	if sess.EndDate, err = parseTime(end); err != nil {
		return tots.Session{}, err
	}
	if sess.CreatedAt, err = parseTime(created); err != nil {
		return tots.Session{}, err
	}
	return sess, nil
}

func scanVote(row scanner) (tots.Vote, error) {
	var (
		v              tots.Vote
		ids, submitted string
	)
	if err := row.Scan(&v.SessionID, &v.UserID, &v.Admin, &ids, &submitted); err != nil {
		return tots.Vote{}, err
	}
	if err := json.Unmarshal([]byte(ids), &v.PlayerIDs); err != nil {
		return tots.Vote{}, fmt.Errorf("decode vote player ids: %w", err)
	}
	var err error
	if v.SubmittedAt, err = parseTime(submitted); err != nil {
		return tots.Vote{}, err
	}
	return v, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, raw)
}
