package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all HTTP endpoints on the router.
func SetupRoutes(router *gin.Engine, s *Server) {
	router.GET("/health", HealthCheck)

	cube := router.Group("/cube")
	{
		cube.POST("/plot", PlotMoves())
		cube.GET("/cases", ListCases(s))
		cube.POST("/cases/plot", PlotCase(s))
	}

	training := router.Group("/training")
	{
		training.POST("/sessions", StartSession(s))
		training.GET("/sessions", ListSessions(s))
		training.GET("/sessions/:sessionId", GetSession(s))
		training.DELETE("/sessions/:sessionId", DeleteSession(s))
		training.POST("/sessions/:sessionId/question", NextQuestion(s))
		training.POST("/sessions/:sessionId/end", EndSession(s))
		training.POST("/answers", SubmitAnswer(s))

		stats := training.Group("/stats")
		{
			stats.GET("/cases", CaseStatistics(s))
			stats.GET("/cases/:caseName", CaseTrend(s))
			stats.GET("/overall", OverallStatistics(s))
		}

		training.POST("/reset", ResetTraining(s))
	}
}
