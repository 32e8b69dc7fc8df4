package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cubetools/plltrainer"
)

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PlotMoves applies a notation string to a solved cube and returns the
// resulting facelets.
func PlotMoves() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		grid, err := plltrainer.VisualizeMoves(req.Moves)
		if err != nil {
			var perr *plltrainer.ParseError
			if errors.As(err, &perr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "invalid notation",
					"token": perr.Token,
					"pos":   perr.Pos,
				})
				return
			}
			slog.Error("failed to plot moves", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to plot moves"})
			return
		}

		c.JSON(http.StatusOK, PlotResponse{Grid: encodeGrid(grid)})
	}
}

// ListCases returns the available case names.
func ListCases(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cases": s.cases.Names()})
	}
}

// PlotCase returns the presentation state for one named case.
func PlotCase(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CasePlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		auf, ok := parseAUF(req.AUF)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "auf must be one of U, U', U2 or empty"})
			return
		}

		grid, err := plltrainer.VisualizeCase(s.cases, req.Case, auf)
		if err != nil {
			if errors.Is(err, plltrainer.ErrUnknownCase) {
				c.JSON(http.StatusNotFound, gin.H{
					"error":     "unknown case",
					"case":      req.Case,
					"available": s.cases.Names(),
				})
				return
			}
			slog.Error("failed to plot case", "case", req.Case, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to plot case"})
			return
		}

		c.JSON(http.StatusOK, PlotResponse{Grid: encodeGrid(grid)})
	}
}
