package handlers

import (
	"net/http"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LenderOfferHandler struct {
	matchingService services.LoanMatchingServiceInterface
}

func NewLenderOfferHandler(matchingService services.LoanMatchingServiceInterface) *LenderOfferHandler {
	return &LenderOfferHandler{matchingService: matchingService}
}

func (h *LenderOfferHandler) CreateLenderOffer(c *gin.Context) {
	var req models.CreateLenderOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := h.matchingService.CreateLenderOffer(c.Request.Context(), req.LenderAddress, req.AmountUSDC, req.InterestRate, req.MaxDurationDays, req.MinCreditScore)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *LenderOfferHandler) ActiveLenderOffers(c *gin.Context) {
	offers, err := h.matchingService.ActiveLenderOffers(c.Request.Context(), listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *LenderOfferHandler) LenderOffersByLender(c *gin.Context) {
	offers, err := h.matchingService.LenderOffersByLender(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *LenderOfferHandler) AvailableLoans(c *gin.Context) {
	loans, err := h.matchingService.AvailableLoans(c.Request.Context(), listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LenderOfferHandler) TakeLoan(c *gin.Context) {
	loanID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorAvailableLoanNotFound)
		return
	}

	var req models.TakeLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchingService.TakeLoan(c.Request.Context(), loanID, req.TakerAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
