package service

import (
	"context"
	"time"
)

// Mailer hands a rendered message to the delivery channel.
type Mailer interface {
	Send(ctx context.Context, address, subject, content string) error
}

// VerificationMail is the data a verification message is rendered from.
type VerificationMail struct {
	Username        string
	VerificationURL string
	ExpiresIn       time.Duration
}

// MailRenderer turns message data into a subject and a plain text body.
type MailRenderer interface {
	RenderVerification(mail VerificationMail) (subject string, content string, err error)
}
