package mail

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/service"
)

// logTransport writes messages to the log instead of sending them. For local development only:
// the body carries the verification link.
type logTransport struct {
	logger *slog.Logger
}

// NewLogTransport returns a transport that logs every message at info level.
func NewLogTransport(logger *slog.Logger) service.MailTransport {
	return &logTransport{logger: logger}
}

func (t *logTransport) Deliver(ctx context.Context, event *service.MailEvent) error {
	t.logger.InfoContext(ctx, "Mail delivered to log",
		slog.String("message_id", event.MessageID),
		slog.String("address", event.Address),
		slog.String("subject", event.Subject),
		slog.String("content", event.Content),
	)

	return nil
}

// NewMailTransport picks the transport named by mail.transport.
func NewMailTransport(cfg *config.Config, logger *slog.Logger) (service.MailTransport, error) {
	if cfg.Mail.Transport == constants.MailTransportSMTP {
		return NewSMTPTransport(cfg.Mail, logger)
	}

	return NewLogTransport(logger), nil
}
