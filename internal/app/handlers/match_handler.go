package handlers

import (
	"net/http"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MatchHandler struct {
	matchingService services.LoanMatchingServiceInterface
}

func NewMatchHandler(matchingService services.LoanMatchingServiceInterface) *MatchHandler {
	return &MatchHandler{matchingService: matchingService}
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorMatchNotFound)
		return
	}

	match, err := h.matchingService.MatchByID(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) RepayLoan(c *gin.Context) {
	matchID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorMatchNotFound)
		return
	}

	match, err := h.matchingService.RepayLoan(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) MarkDefaulted(c *gin.Context) {
	matchID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorMatchNotFound)
		return
	}

	match, err := h.matchingService.MarkDefaulted(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) MyLoans(c *gin.Context) {
	loans, err := h.matchingService.MyLoans(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}
