package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrMailRejected marks a delivery failure that retrying will not fix.
var ErrMailRejected = errors.New("mail rejected by transport")

// MailTransport delivers a rendered message to its recipient. Used by the mail worker.
type MailTransport interface {
	Deliver(ctx context.Context, event *MailEvent) error
}
