package aws

import (
	"context"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/pkg/sqs"
)

// SQSSenderAdapter adapts pkg/sqs.Sender to the domain queue interfaces
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

var (
	_ queue.Sender        = (*SQSSenderAdapter)(nil)
	_ queue.QueueResolver = (*SQSSenderAdapter)(nil)
)

func NewSQSSenderAdapter(sqsClient sqs.SQSClient) *SQSSenderAdapter {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error {
	return adapter.sqsSender.SendMessage(ctx, queueName, body, attributes)
}

func (adapter *SQSSenderAdapter) QueueURL(ctx context.Context, queueName string) (string, error) {
	return adapter.sqsSender.QueueURL(ctx, queueName)
}
