package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a training session in the database.
type Session struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         *time.Time
	TotalAttempts   int
	CorrectAttempts int
	SelectedCases   []string
}

// Duration returns the session length, or zero if it has not ended.
func (s *Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// SessionRepository provides CRUD operations for training sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session over the given case selection and
// returns its ID.
func (r *SessionRepository) Create(selectedCases []string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	selected, err := json.Marshal(selectedCases)
	if err != nil {
		return "", fmt.Errorf("failed to encode case selection: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO training_sessions (session_id, started_at, selected_cases)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), string(selected))

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished. Ending an already ended session
// keeps the original end time.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	res, err := r.db.Exec(`
		UPDATE training_sessions
		SET ended_at = COALESCE(ended_at, ?)
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check session update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}

	return nil
}

// Get retrieves a session by ID. Returns nil when the session does not
// exist.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, total_attempts, correct_attempts, selected_cases
		FROM training_sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, total_attempts, correct_attempts, selected_cases
		FROM training_sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its attempts (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM training_sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var selected string

	err := row.Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.TotalAttempts, &s.CorrectAttempts, &selected,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	if err := json.Unmarshal([]byte(selected), &s.SelectedCases); err != nil {
		return nil, fmt.Errorf("failed to decode case selection: %w", err)
	}

	return &s, nil
}
