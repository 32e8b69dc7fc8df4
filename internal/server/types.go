package server

import (
	"time"

	"github.com/cubetools/plltrainer"
	"github.com/cubetools/plltrainer/internal/storage"
	"github.com/cubetools/plltrainer/internal/trainer"
)

// PlotRequest asks for the state reached by a move sequence.
type PlotRequest struct {
	Moves string `json:"moves"`
}

// CasePlotRequest asks for a case's presentation state.
type CasePlotRequest struct {
	Case string `json:"case" binding:"required"`
	AUF  string `json:"auf"` // "", "U", "U'", "U2"
}

// PlotResponse carries a facelet grid keyed by face letter, each face
// a row-major list of color initials.
type PlotResponse struct {
	Grid map[string][]string `json:"grid"`
}

// StartSessionRequest selects the cases to train.
type StartSessionRequest struct {
	Cases []string `json:"cases" binding:"required"`
}

// QuestionResponse is one recognition challenge. Case names the
// expected answer; clients that want a fair quiz hide it from view.
type QuestionResponse struct {
	Case    string              `json:"case"`
	Setup   string              `json:"setup"`
	Grid    map[string][]string `json:"grid"`
	Choices []string            `json:"choices"`
}

// StartSessionResponse returns the new session and its first question.
type StartSessionResponse struct {
	SessionID string           `json:"session_id"`
	Question  QuestionResponse `json:"question"`
}

// AnswerRequest submits one answer.
type AnswerRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	Case       string `json:"case" binding:"required"`
	Answer     string `json:"answer"`
	ReactionMs int64  `json:"reaction_ms"`
}

// AnswerResponse reports the verdict. NextQuestion is only present
// after a correct answer, mirroring a drill that repeats missed cases.
type AnswerResponse struct {
	Correct       bool              `json:"correct"`
	CorrectAnswer string            `json:"correct_answer"`
	NextQuestion  *QuestionResponse `json:"next_question,omitempty"`
}

// SessionResponse summarizes a stored session.
type SessionResponse struct {
	SessionID       string     `json:"session_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSec     float64    `json:"duration_sec,omitempty"`
	TotalAttempts   int        `json:"total_attempts"`
	CorrectAttempts int        `json:"correct_attempts"`
	SelectedCases   []string   `json:"selected_cases"`
	AverageMs       float64    `json:"average_ms"`
}

// CaseStatsResponse aggregates one case's training history.
type CaseStatsResponse struct {
	Case            string            `json:"case"`
	TotalAttempts   int               `json:"total_attempts"`
	CorrectAttempts int               `json:"correct_attempts"`
	Accuracy        float64           `json:"accuracy"`
	BestMs          int64             `json:"best_ms"`
	AverageMs       float64           `json:"average_ms"`
	Recent          []AttemptResponse `json:"recent"`
}

// AttemptResponse is one recorded answer.
type AttemptResponse struct {
	Case       string    `json:"case"`
	Answer     string    `json:"answer"`
	Correct    bool      `json:"correct"`
	ReactionMs int64     `json:"reaction_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// OverallStatsResponse aggregates all training history.
type OverallStatsResponse struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalAttempts   int     `json:"total_attempts"`
	CorrectAttempts int     `json:"correct_attempts"`
	Accuracy        float64 `json:"accuracy"`
	AverageMs       float64 `json:"average_ms"`
	BestMs          int64   `json:"best_ms"`
}

func encodeGrid(g plltrainer.FaceletGrid) map[string][]string {
	out := make(map[string][]string, 6)
	for f := 0; f < 6; f++ {
		face := plltrainer.CubeFace(f)
		cells := make([]string, 9)
		for i, c := range g[face] {
			cells[i] = c.String()[:1]
		}
		out[face.String()] = cells
	}
	return out
}

func encodeQuestion(q trainer.Question) QuestionResponse {
	return QuestionResponse{
		Case:    q.Case,
		Setup:   q.Setup.String(),
		Grid:    encodeGrid(q.Grid),
		Choices: q.Choices,
	}
}

func encodeSession(s storage.Session, averageMs float64) SessionResponse {
	resp := SessionResponse{
		SessionID:       s.SessionID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		TotalAttempts:   s.TotalAttempts,
		CorrectAttempts: s.CorrectAttempts,
		SelectedCases:   s.SelectedCases,
		AverageMs:       averageMs,
	}
	if s.EndedAt != nil {
		resp.DurationSec = s.Duration().Seconds()
	}
	return resp
}

func parseAUF(s string) (plltrainer.AUF, bool) {
	switch s {
	case "":
		return plltrainer.AUFNone, true
	case "U":
		return plltrainer.AUFCW, true
	case "U'":
		return plltrainer.AUFCCW, true
	case "U2":
		return plltrainer.AUFHalf, true
	default:
		return plltrainer.AUFNone, false
	}
}
