// Package server exposes the cube engine and trainer over HTTP.
package server

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cubetools/plltrainer/internal/config"
	"github.com/cubetools/plltrainer/internal/pll"
	"github.com/cubetools/plltrainer/internal/storage"
	"github.com/cubetools/plltrainer/internal/trainer"
)

// Server bundles the case database, question generator, and storage
// behind a gin router.
type Server struct {
	cases    *pll.Database
	db       *storage.DB
	sessions *storage.SessionRepository
	attempts *storage.AttemptRepository

	// The generator's random source is not concurrency-safe.
	genMu sync.Mutex
	gen   *trainer.Generator

	router *gin.Engine
	addr   string
}

// New assembles a server from loaded configuration and an open
// database.
func New(cfg config.Config, db *storage.DB, cases *pll.Database) *Server {
	policy := trainer.Policy{
		PreRotate:  cfg.Training.PreRotate,
		PostRotate: cfg.Training.PostRotate,
		PostAUF:    cfg.Training.PostAUF,
		AllowNoAUF: cfg.Training.AllowNoAUF,
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &Server{
		cases:    cases,
		db:       db,
		sessions: storage.NewSessionRepository(db),
		attempts: storage.NewAttemptRepository(db),
		gen:      trainer.NewGenerator(cases, rng, policy),
		addr:     cfg.Server.Addr(),
	}

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	SetupRoutes(s.router, s)

	return s
}

// Router returns the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	slog.Info("starting server", "addr", s.addr)
	return s.router.Run(s.addr)
}

// nextQuestion generates a question under the generator lock.
func (s *Server) nextQuestion(selected []string) (trainer.Question, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gen.Next(selected)
}
