package handlers

import (
	"net/http"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type CreditScoreHandler struct {
	scoreService services.CreditScoreServiceInterface
	tierService  *services.CreditTierService
}

func NewCreditScoreHandler(scoreService services.CreditScoreServiceInterface, tierService *services.CreditTierService) *CreditScoreHandler {
	return &CreditScoreHandler{scoreService: scoreService, tierService: tierService}
}

func (h *CreditScoreHandler) GetCreditScore(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true"

	score, err := h.scoreService.GetCreditScore(c.Request.Context(), c.Param("walletAddress"), forceRefresh)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creditScore": score,
		"tier":        h.tierService.ResolveCreditTier(score.Score),
		"range":       h.tierService.GetCreditScoreRange(score.Score),
	})
}

type updateScoreRequest struct {
	Score int `json:"score" binding:"required"`
}

func (h *CreditScoreHandler) UpdateCreditScore(c *gin.Context) {
	var req updateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreService.UpdateCreditScore(c.Request.Context(), c.Param("walletAddress"), req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *CreditScoreHandler) GetCreditTier(c *gin.Context) {
	score, err := h.scoreService.GetCreditScore(c.Request.Context(), c.Param("walletAddress"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tierService.ResolveCreditTier(score.Score))
}
