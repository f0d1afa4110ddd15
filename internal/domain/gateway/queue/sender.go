package queue

import "context"

// Sender publishes a message body to a named queue
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
}

// NopSender drops every message. It is used when no queue is configured.
type NopSender struct{}

func (NopSender) SendMessage(context.Context, string, any, map[string]string) error {
	return nil
}
