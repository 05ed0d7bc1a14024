package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pubsub"
)

// NotificationService pushes user-facing notifications to the Pub/Sub topic
// consumed by the delivery pipeline.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{pubsubPublisher: pubsubPublisher}
}

// NotifyUser publishes an event addressed to one wallet. Parameters carry the
// template values the delivery side interpolates (amounts, counterparties).
func (h *NotificationService) NotifyUser(ctx context.Context, walletAddress string, event string, parameters map[string]string) error {
	payload := models.UserNotification{
		WalletAddress: walletAddress,
		Event:         event,
		Parameters:    parameters,
		Timestamp:     time.Now().UTC(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "Failed to marshal notification payload: %v", err)
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Detach from the request context so an aborted request cannot cancel an
	// in-flight publish.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attributes := map[string]string{
		"event":         event,
		"walletAddress": walletAddress,
	}

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, attributes)
	if err != nil {
		logger.Error(ctx, "Failed to publish notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Published %s notification for %s with message ID: %s", event, walletAddress, messageID)
	return nil
}
