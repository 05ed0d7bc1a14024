package app

import (
	"context"
)

type KafkaRetryService interface {
	RetryLoanLifecycleMessages(context.Context) ([]string, []string, error)
}
