package sessions

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	errs "github.com/bit-orbit/oauth/internal/errors"
	_ "modernc.org/sqlite"
)

const sessionsSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// SQLiteRepo is a durable implementation of Repo backed by a single SQLite
// file, so sessions survive process restarts.
type SQLiteRepo struct {
	db *sql.DB
}

// OpenSQLiteRepo opens (creating if necessary) the session database at path
// and applies the schema.
func OpenSQLiteRepo(path string) (*SQLiteRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("[sessions OpenSQLiteRepo] path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("[sessions OpenSQLiteRepo] open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("[sessions OpenSQLiteRepo] ping db: %w", err)
	}

	if _, err := db.Exec(sessionsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("[sessions OpenSQLiteRepo] apply schema: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// Close releases the underlying database
func (r *SQLiteRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Upsert creates or updates a session
func (r *SQLiteRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("[sessions Upsert] marshal session: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO sessions (id, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		sessionID, string(data), session.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("[sessions Upsert] write session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID
func (r *SQLiteRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("sessionID is required")
	}

	var data string
	err := r.db.QueryRow(`SELECT data FROM sessions WHERE id = ?`, sessionID).Scan(&data)
	if err == sql.ErrNoRows {
		return Session{}, errs.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("[sessions Get] read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return Session{}, fmt.Errorf("[sessions Get] unmarshal session: %w", err)
	}
	return session, nil
}

// Delete removes a session
func (r *SQLiteRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	if _, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("[sessions Delete] delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions created before the cutoff.
func (r *SQLiteRepo) DeleteExpired(cutoff time.Time) error {
	if _, err := r.db.Exec(`DELETE FROM sessions WHERE created_at < ?`, cutoff.UTC().UnixMilli()); err != nil {
		return fmt.Errorf("[sessions DeleteExpired] delete sessions: %w", err)
	}
	return nil
}
