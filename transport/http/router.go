package http

import (
	"github.com/gin-gonic/gin"

	"github.com/obolus/obolus/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(challengeService *service.ChallengeService) *gin.Engine {
	router := gin.Default()

	handlers := NewChallengeHandlers(challengeService)

	router.POST("/challenge", handlers.Challenge)
	router.POST("/verify", handlers.Verify)

	return router
}
