// Package mail hands outbound messages to the delivery channel.
package mail

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

// pubsubMailer publishes each message as a MailEvent. A separate worker owns SMTP.
type pubsubMailer struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPubSubMailer returns a Mailer backed by the configured event publisher.
func NewPubSubMailer(publisher service.EventPublisher, logger *slog.Logger) service.Mailer {
	return &pubsubMailer{
		publisher: publisher,
		logger:    logger,
	}
}

// Send publishes the message. The content is never logged since it may carry a token.
func (m *pubsubMailer) Send(ctx context.Context, address, subject, content string) error {
	if address == "" {
		return errors.New("mail address is required")
	}

	messageID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate message id")
	}

	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MessageID: messageID.String(),
		Address:   address,
		Subject:   subject,
		Content:   content,
	}

	if err := m.publisher.PublishMailEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish mail event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Mail event published",
		slog.String("message_id", event.MessageID),
		slog.String("subject", subject),
	)

	return nil
}
