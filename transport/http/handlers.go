package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obolus/obolus"
	"github.com/obolus/obolus/service"
)

// ChallengeHandlers contains HTTP handlers for the challenge endpoints
type ChallengeHandlers struct {
	challengeService *service.ChallengeService
}

// NewChallengeHandlers creates new challenge handlers
func NewChallengeHandlers(challengeService *service.ChallengeService) *ChallengeHandlers {
	return &ChallengeHandlers{
		challengeService: challengeService,
	}
}

// Challenge handles challenge issuance
func (h *ChallengeHandlers) Challenge(c *gin.Context) {
	var req struct {
		Action        string `json:"action" binding:"required"`
		ExpirySeconds int    `json:"expiry_seconds"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	validity := time.Duration(req.ExpirySeconds) * time.Second
	challenge, err := h.challengeService.Issue(c.Request.Context(), req.Action, validity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// Verify handles response verification
func (h *ChallengeHandlers) Verify(c *gin.Context) {
	var req struct {
		Response obolus.Response `json:"response" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := obolus.ParseDecision(string(req.Response.Response)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid response decision"})
		return
	}

	verified, status, err := h.challengeService.VerifyResponse(c.Request.Context(), &req.Response)
	if err != nil {
		switch {
		case errors.Is(err, obolus.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		case errors.Is(err, obolus.ErrChallengeConsumed):
			c.JSON(http.StatusConflict, gin.H{"error": "Challenge has already been consumed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified": verified,
		"status":   status,
	})
}
