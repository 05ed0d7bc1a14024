package handlers

import (
	"net/http"
	"strings"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps platform error codes onto HTTP statuses: validation
// failures are 400, missing records 404, rejected state transitions 409,
// everything else 500.
func respondError(c *gin.Context, err error) {
	code := utils.GetErrorCode(err)

	status := http.StatusInternalServerError
	switch {
	case strings.Contains(code, "VALIDATION"):
		status = http.StatusBadRequest
	case strings.Contains(code, "NOT_FOUND"):
		status = http.StatusNotFound
	case strings.Contains(code, "NOT_PENDING"),
		strings.Contains(code, "NOT_ACTIVE"),
		strings.Contains(code, "ALREADY_TAKEN"):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
