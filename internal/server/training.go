package server

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/cubetools/plltrainer/internal/analysis"
	"github.com/cubetools/plltrainer/internal/storage"
	"github.com/cubetools/plltrainer/internal/trainer"
)

// StartSession creates a session over a case selection and returns its
// first question.
func StartSession(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		selected, err := trainer.ValidateSelection(s.cases, req.Cases)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := s.sessions.Create(selected)
		if err != nil {
			slog.Error("failed to create session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
			return
		}

		q, err := s.nextQuestion(selected)
		if err != nil {
			slog.Error("failed to generate question", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate question"})
			return
		}

		slog.Info("session started", "sessionId", id, "cases", len(selected))
		c.JSON(http.StatusCreated, StartSessionResponse{
			SessionID: id,
			Question:  encodeQuestion(q),
		})
	}
}

// SubmitAnswer records an attempt and, when correct, hands out the next
// question.
func SubmitAnswer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session, err := s.sessions.Get(req.SessionID)
		if err != nil {
			slog.Error("failed to load session", "sessionId", req.SessionID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			return
		}
		if session == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		correct := trainer.Check(req.Case, req.Answer)
		if err := s.attempts.Record(req.SessionID, req.Case, req.Answer, correct, req.ReactionMs); err != nil {
			slog.Error("failed to record attempt", "sessionId", req.SessionID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record attempt"})
			return
		}

		resp := AnswerResponse{Correct: correct, CorrectAnswer: req.Case}
		if correct {
			q, err := s.nextQuestion(session.SelectedCases)
			if err != nil {
				slog.Error("failed to generate question", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate question"})
				return
			}
			next := encodeQuestion(q)
			resp.NextQuestion = &next
		}

		c.JSON(http.StatusOK, resp)
	}
}

// NextQuestion generates a question for an existing session without
// recording anything.
func NextQuestion(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, done := loadSession(c, s)
		if done {
			return
		}

		q, err := s.nextQuestion(session.SelectedCases)
		if err != nil {
			slog.Error("failed to generate question", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate question"})
			return
		}

		c.JSON(http.StatusOK, encodeQuestion(q))
	}
}

// EndSession marks a session finished.
func EndSession(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, done := loadSession(c, s)
		if done {
			return
		}

		if err := s.sessions.End(session.SessionID); err != nil {
			slog.Error("failed to end session", "sessionId", session.SessionID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
			return
		}

		slog.Info("session ended", "sessionId", session.SessionID)
		c.JSON(http.StatusOK, gin.H{"status": "ended", "session_id": session.SessionID})
	}
}

// ListSessions returns recent sessions, newest first.
func ListSessions(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := s.sessions.List(100)
		if err != nil {
			slog.Error("failed to list sessions", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
			return
		}

		out := make([]SessionResponse, 0, len(sessions))
		for _, session := range sessions {
			out = append(out, encodeSession(session, 0))
		}
		c.JSON(http.StatusOK, gin.H{"sessions": out})
	}
}

// GetSession returns one session with its aggregated stats.
func GetSession(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, done := loadSession(c, s)
		if done {
			return
		}

		stats, err := s.attempts.StatsForSession(session.SessionID)
		if err != nil {
			slog.Error("failed to aggregate session", "sessionId", session.SessionID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate session"})
			return
		}

		c.JSON(http.StatusOK, encodeSession(*session, stats.AverageMs))
	}
}

// DeleteSession removes a session and its attempts.
func DeleteSession(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, done := loadSession(c, s)
		if done {
			return
		}

		if err := s.sessions.Delete(session.SessionID); err != nil {
			slog.Error("failed to delete session", "sessionId", session.SessionID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete session"})
			return
		}

		slog.Info("session deleted", "sessionId", session.SessionID)
		c.JSON(http.StatusOK, gin.H{"status": "deleted", "session_id": session.SessionID})
	}
}

// CaseStatistics aggregates training history per case, strongest first.
func CaseStatistics(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]CaseStatsResponse, 0, s.cases.Len())
		for _, name := range s.cases.Names() {
			stats, err := s.attempts.StatsForCase(name)
			if err != nil {
				slog.Error("failed to aggregate case", "case", name, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
				return
			}

			resp := CaseStatsResponse{
				Case:            name,
				TotalAttempts:   stats.TotalAttempts,
				CorrectAttempts: stats.CorrectAttempts,
				Accuracy:        stats.Accuracy,
				BestMs:          stats.BestMs,
				AverageMs:       stats.AverageMs,
				Recent:          make([]AttemptResponse, 0, len(stats.Recent)),
			}
			for _, a := range stats.Recent {
				resp.Recent = append(resp.Recent, AttemptResponse{
					Case:       a.CaseName,
					Answer:     a.UserAnswer,
					Correct:    a.IsCorrect,
					ReactionMs: a.ReactionMs,
					Timestamp:  a.CreatedAt,
				})
			}
			out = append(out, resp)
		}

		sortCaseStats(out)
		c.JSON(http.StatusOK, gin.H{"cases": out})
	}
}

// CaseTrend reports recognition progress for a single case.
func CaseTrend(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		pllCase, ok := s.cases.Get(c.Param("caseName"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown case"})
			return
		}

		attempts, err := s.attempts.ListByCase(pllCase.Name)
		if err != nil {
			slog.Error("failed to load case attempts", "case", pllCase.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
			return
		}

		c.JSON(http.StatusOK, analysis.AnalyzeTrend(pllCase.Name, attempts))
	}
}

// OverallStatistics aggregates everything recorded so far.
func OverallStatistics(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.attempts.StatsOverall()
		if err != nil {
			slog.Error("failed to aggregate overall stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
			return
		}

		c.JSON(http.StatusOK, OverallStatsResponse{
			TotalSessions:   stats.TotalSessions,
			TotalAttempts:   stats.TotalAttempts,
			CorrectAttempts: stats.CorrectAttempts,
			Accuracy:        stats.Accuracy,
			AverageMs:       stats.AverageMs,
			BestMs:          stats.BestMs,
		})
	}
}

// ResetTraining wipes all recorded sessions and attempts.
func ResetTraining(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.db.Reset(); err != nil {
			slog.Error("failed to reset training data", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset training data"})
			return
		}

		slog.Info("training data reset")
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}

// loadSession resolves the :sessionId path parameter, writing the error
// response itself when the session cannot be served.
func loadSession(c *gin.Context, s *Server) (*storage.Session, bool) {
	id := c.Param("sessionId")

	session, err := s.sessions.Get(id)
	if err != nil {
		slog.Error("failed to load session", "sessionId", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return nil, true
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, true
	}
	return session, false
}

// sortCaseStats orders by accuracy descending, then average time
// ascending with untrained cases last.
func sortCaseStats(stats []CaseStatsResponse) {
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		if a.AverageMs == 0 {
			return false
		}
		if b.AverageMs == 0 {
			return true
		}
		return a.AverageMs < b.AverageMs
	})
}
