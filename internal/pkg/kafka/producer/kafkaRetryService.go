package producer

import (
	"context"
	"fmt"
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LendingTxnStoreInterface interface {
	FindUnpublished(ctx context.Context, olderThan time.Time) ([]models.LendingTransaction, error)
	MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error
}

type BorrowingTxnStoreInterface interface {
	FindUnpublished(ctx context.Context, olderThan time.Time) ([]models.BorrowingTransaction, error)
	MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error
}

// KafkaRetryService re-publishes transactions whose lifecycle event never made
// it to Kafka on the first attempt.
type KafkaRetryService struct {
	lendingStore   LendingTxnStoreInterface
	borrowingStore BorrowingTxnStoreInterface
}

func NewKafkaRetryService(lendingStore LendingTxnStoreInterface, borrowingStore BorrowingTxnStoreInterface) *KafkaRetryService {
	return &KafkaRetryService{lendingStore: lendingStore, borrowingStore: borrowingStore}
}

func (ks *KafkaRetryService) RetryLoanLifecycleMessages(ctx context.Context) ([]string, []string, error) {
	topic := configs.KAFKA_TOPIC
	server := configs.KAFKA_SERVER
	if KafkaProducer == nil {
		producer, err := NewKafkaProducer(server, topic)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
			return nil, nil, err
		}
		logger.Info(ctx, "Kafka Producer Created")
		KafkaProducer = producer
	}

	olderThan := time.Now().Add(-time.Duration(configs.KAFKA_RETRY_DURATION) * time.Minute)

	lending, err := ks.lendingStore.FindUnpublished(ctx, olderThan)
	if err != nil {
		return nil, nil, err
	}
	borrowing, err := ks.borrowingStore.FindUnpublished(ctx, olderThan)
	if err != nil {
		return nil, nil, err
	}

	messages := map[string]string{}
	lendingByID := map[string]primitive.ObjectID{}
	borrowingByID := map[string]primitive.ObjectID{}

	for _, txn := range lending {
		event := models.LoanLifecycleEvent{
			GUID:            txn.MatchID.Hex(),
			EventType:       consts.EventLoanFunded,
			MatchID:         txn.MatchID.Hex(),
			LenderAddress:   txn.LenderAddress,
			BorrowerAddress: txn.BorrowerAddress,
			AmountUSDC:      txn.AmountUSDC,
			APR:             txn.APR,
			DurationDays:    txn.DurationDays,
			Status:          txn.Status,
			Timestamp:       txn.CreatedAt,
		}
		payload, err := common.SerializeLoanLifecycleEvent(event)
		if err != nil {
			logger.Error(ctx, "failed to serialize lifecycle event for %s: %v", txn.ID.Hex(), err)
			continue
		}
		messages[txn.ID.Hex()] = payload
		lendingByID[txn.ID.Hex()] = txn.ID
	}

	for _, txn := range borrowing {
		event := models.LoanLifecycleEvent{
			GUID:            txn.MatchID.Hex(),
			EventType:       consts.EventLoanFunded,
			MatchID:         txn.MatchID.Hex(),
			LenderAddress:   txn.LenderAddress,
			BorrowerAddress: txn.BorrowerAddress,
			AmountUSDC:      txn.AmountUSDC,
			APR:             txn.APR,
			DurationDays:    txn.DurationDays,
			Status:          txn.Status,
			Timestamp:       txn.CreatedAt,
		}
		payload, err := common.SerializeLoanLifecycleEvent(event)
		if err != nil {
			logger.Error(ctx, "failed to serialize lifecycle event for %s: %v", txn.ID.Hex(), err)
			continue
		}
		messages[txn.ID.Hex()] = payload
		borrowingByID[txn.ID.Hex()] = txn.ID
	}

	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("no unpublished transactions found in the duration")
	}

	successIDs, failedIDs, err := SendMessageBatch(ctx, KafkaProducer, messages, topic, 2)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range successIDs {
		if oid, ok := lendingByID[id]; ok {
			if err := ks.lendingStore.MarkPublishedToKafka(ctx, oid); err != nil {
				logger.Error(ctx, "error updating Kafka flag for lending transaction %s: %v", id, err)
			}
			continue
		}
		if oid, ok := borrowingByID[id]; ok {
			if err := ks.borrowingStore.MarkPublishedToKafka(ctx, oid); err != nil {
				logger.Error(ctx, "error updating Kafka flag for borrowing transaction %s: %v", id, err)
			}
		}
	}

	return successIDs, failedIDs, nil
}
