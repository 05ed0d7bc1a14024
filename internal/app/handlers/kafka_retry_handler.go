package handlers

import (
	"net/http"

	app "github.com/Kredible-Inc/kredible-lending/internal/app"

	"github.com/gin-gonic/gin"
)

type KafkaRetryHandler struct {
	service app.KafkaRetryService
}

func NewKafkaRetryHandler(service app.KafkaRetryService) *KafkaRetryHandler {
	return &KafkaRetryHandler{service: service}
}

func (h *KafkaRetryHandler) RetryLoanLifecycleMessages(c *gin.Context) {
	successMessages, failedMessages, err := h.service.RetryLoanLifecycleMessages(c.Request.Context())
	if err != nil && len(successMessages) > 0 {
		c.JSON(http.StatusOK, gin.H{"Success Messages": successMessages, "failedMessages": failedMessages, "error": err})
		return
	} else if err != nil && len(successMessages) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Success Messages": successMessages, "failedMessages": failedMessages})
}
