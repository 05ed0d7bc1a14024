package handlers

import (
	"net/http"
	"strconv"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultListLimit = 20

type LoanRequestHandler struct {
	matchingService services.LoanMatchingServiceInterface
}

func NewLoanRequestHandler(matchingService services.LoanMatchingServiceInterface) *LoanRequestHandler {
	return &LoanRequestHandler{matchingService: matchingService}
}

func (h *LoanRequestHandler) CreateLoanRequest(c *gin.Context) {
	var req models.CreateLoanRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.matchingService.CreateLoanRequest(c.Request.Context(), req.BorrowerAddress, req.AmountUSDC, req.DurationDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *LoanRequestHandler) OpenLoanRequests(c *gin.Context) {
	requests, err := h.matchingService.OpenLoanRequests(c.Request.Context(), listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *LoanRequestHandler) LoanRequestsByBorrower(c *gin.Context) {
	requests, err := h.matchingService.LoanRequestsByBorrower(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *LoanRequestHandler) FundLoan(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorLoanRequestNotFound)
		return
	}

	var req models.FundLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchingService.FundLoan(c.Request.Context(), requestID, req.FunderAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *LoanRequestHandler) CancelLoanRequest(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, consts.ErrorLoanRequestNotFound)
		return
	}

	var req models.CancelLoanRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.matchingService.CancelLoanRequest(c.Request.Context(), requestID, req.BorrowerAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func listLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)), 10, 64)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return limit
}
