package service

import (
	"context"
)

// MailEvent is a request to deliver one message, consumed by the mail worker.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	MessageID string `json:"message_id"`
	Address   string `json:"address"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
