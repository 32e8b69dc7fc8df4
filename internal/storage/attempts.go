package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Attempt represents a single answered question within a session.
type Attempt struct {
	AttemptID  int64
	SessionID  string
	CaseName   string
	UserAnswer string
	IsCorrect  bool
	ReactionMs int64
	CreatedAt  time.Time
}

// AttemptRepository records answers and aggregates statistics.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Record inserts an attempt and bumps the session counters in one
// transaction. The session must exist.
func (r *AttemptRepository) Record(sessionID, caseName, userAnswer string, isCorrect bool, reactionMs int64) error {
	createdAt := time.Now().UTC()

	return r.db.Transaction(func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			UPDATE training_sessions
			SET total_attempts = total_attempts + 1,
			    correct_attempts = correct_attempts + ?
			WHERE session_id = ?
		`, boolToInt(isCorrect), sessionID)
		if err != nil {
			return fmt.Errorf("failed to update session counters: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check session update: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("session %s not found", sessionID)
		}

		_, err = tx.Exec(`
			INSERT INTO training_attempts (session_id, case_name, user_answer, is_correct, reaction_ms, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sessionID, caseName, userAnswer, boolToInt(isCorrect), reactionMs, createdAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to record attempt: %w", err)
		}

		return nil
	})
}

// ListBySession retrieves a session's attempts, oldest first.
func (r *AttemptRepository) ListBySession(sessionID string) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, case_name, user_answer, is_correct, reaction_ms, created_at
		FROM training_attempts
		WHERE session_id = ?
		ORDER BY attempt_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListByCase retrieves every attempt for one case, oldest first.
func (r *AttemptRepository) ListByCase(caseName string) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, case_name, user_answer, is_correct, reaction_ms, created_at
		FROM training_attempts
		WHERE case_name = ?
		ORDER BY attempt_id
	`, caseName)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for case: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// Recent retrieves the latest attempts for one case, newest first.
func (r *AttemptRepository) Recent(caseName string, limit int) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, case_name, user_answer, is_correct, reaction_ms, created_at
		FROM training_attempts
		WHERE case_name = ?
		ORDER BY attempt_id DESC
		LIMIT ?
	`, caseName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// CaseStats aggregates accuracy and reaction times for one case.
type CaseStats struct {
	CaseName        string
	TotalAttempts   int
	CorrectAttempts int
	Accuracy        float64
	BestMs          int64
	AverageMs       float64
	Recent          []Attempt
}

// StatsForCase aggregates all recorded attempts for one case, with the
// ten most recent attempts attached.
func (r *AttemptRepository) StatsForCase(caseName string) (CaseStats, error) {
	stats := CaseStats{CaseName: caseName}

	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(is_correct), 0),
		       COALESCE(MIN(CASE WHEN is_correct = 1 THEN reaction_ms END), 0),
		       COALESCE(AVG(CASE WHEN is_correct = 1 THEN reaction_ms END), 0)
		FROM training_attempts
		WHERE case_name = ?
	`, caseName).Scan(&stats.TotalAttempts, &stats.CorrectAttempts, &stats.BestMs, &stats.AverageMs)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate case stats: %w", err)
	}

	if stats.TotalAttempts > 0 {
		stats.Accuracy = float64(stats.CorrectAttempts) / float64(stats.TotalAttempts) * 100
	}

	recent, err := r.Recent(caseName, 10)
	if err != nil {
		return stats, err
	}
	stats.Recent = recent

	return stats, nil
}

// SessionStats aggregates one session's results.
type SessionStats struct {
	SessionID       string
	TotalAttempts   int
	CorrectAttempts int
	Accuracy        float64
	AverageMs       float64
	StartedAt       time.Time
	EndedAt         *time.Time
}

// StatsForSession aggregates a session's counters with the average
// reaction time over its correct answers. Returns nil when the session
// does not exist.
func (r *AttemptRepository) StatsForSession(sessionID string) (*SessionStats, error) {
	sessions := NewSessionRepository(r.db)
	s, err := sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	stats := SessionStats{
		SessionID:       s.SessionID,
		TotalAttempts:   s.TotalAttempts,
		CorrectAttempts: s.CorrectAttempts,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
	}
	if stats.TotalAttempts > 0 {
		stats.Accuracy = float64(stats.CorrectAttempts) / float64(stats.TotalAttempts) * 100
	}

	err = r.db.QueryRow(`
		SELECT COALESCE(AVG(reaction_ms), 0)
		FROM training_attempts
		WHERE session_id = ? AND is_correct = 1
	`, sessionID).Scan(&stats.AverageMs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session stats: %w", err)
	}

	return &stats, nil
}

// OverallStats aggregates all recorded training data.
type OverallStats struct {
	TotalSessions   int
	TotalAttempts   int
	CorrectAttempts int
	Accuracy        float64
	AverageMs       float64
	BestMs          int64
}

// StatsOverall aggregates every session and attempt in the database.
func (r *AttemptRepository) StatsOverall() (OverallStats, error) {
	var stats OverallStats

	err := r.db.QueryRow("SELECT COUNT(*) FROM training_sessions").Scan(&stats.TotalSessions)
	if err != nil {
		return stats, fmt.Errorf("failed to count sessions: %w", err)
	}

	err = r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(is_correct), 0),
		       COALESCE(AVG(CASE WHEN is_correct = 1 THEN reaction_ms END), 0),
		       COALESCE(MIN(CASE WHEN is_correct = 1 THEN reaction_ms END), 0)
		FROM training_attempts
	`).Scan(&stats.TotalAttempts, &stats.CorrectAttempts, &stats.AverageMs, &stats.BestMs)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate attempts: %w", err)
	}

	if stats.TotalAttempts > 0 {
		stats.Accuracy = float64(stats.CorrectAttempts) / float64(stats.TotalAttempts) * 100
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var correct int
		var createdAtStr string

		err := rows.Scan(&a.AttemptID, &a.SessionID, &a.CaseName, &a.UserAnswer, &correct, &a.ReactionMs, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}

		a.IsCorrect = correct != 0
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
