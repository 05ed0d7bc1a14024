package producer

import (
	"context"
	"fmt"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	kafkaservice "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaService struct {
}

func NewKafkaService() *KafkaService {
	return &KafkaService{}
}

func KafkaPublisher(ctx context.Context, payload string) error {
	KafkaTopic := configs.KAFKA_TOPIC

	config := &kafkaservice.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0,
	}
	producer, err := kafkaservice.NewProducer(config)
	if err != nil {
		return fmt.Errorf("failed to create producer: %w", err)
	}
	defer producer.Close()

	payloadBytes := []byte(payload)

	deliveryChan := make(chan kafkaservice.Event, 1)
	err = producer.Produce(&kafkaservice.Message{
		TopicPartition: kafkaservice.TopicPartition{Topic: &KafkaTopic, Partition: kafkaservice.PartitionAny},
		Value:          payloadBytes,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	event := <-deliveryChan
	msg := event.(*kafkaservice.Message)
	if msg.TopicPartition.Error != nil {
		return fmt.Errorf("delivery failed: %w", msg.TopicPartition.Error)
	}

	logger.Info(ctx, "Message delivered to topic: %s, partition: %d, offset: %v, Message content: %s",
		*msg.TopicPartition.Topic, msg.TopicPartition.Partition, msg.TopicPartition.Offset, string(payloadBytes))

	return nil
}

// PublishLoanLifecycle serializes one lifecycle event and delivers it to the
// loan events topic. Callers mark the source record published only after a
// nil return.
func (k *KafkaService) PublishLoanLifecycle(ctx context.Context, event models.LoanLifecycleEvent) error {
	payload, err := common.SerializeLoanLifecycleEvent(event)
	if err != nil {
		return err
	}
	return KafkaPublisher(ctx, payload)
}
