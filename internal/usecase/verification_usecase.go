package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"

	"github.com/google/uuid"
)

// VerificationUsecase manages the single-use email verification token.
type VerificationUsecase interface {
	// Issue stores a fresh token for the account and returns its plaintext.
	Issue(ctx context.Context, account *entity.Account) (string, error)
	// IssueWith is Issue against a caller-supplied repository, e.g. one bound to a transaction.
	IssueWith(ctx context.Context, repo repository.AccountRepository, account *entity.Account) (string, error)
	// Consume marks the owning account verified. A token succeeds at most once.
	Consume(ctx context.Context, token string) (*entity.Account, error)
	// Resend issues a replacement token for an account that is not verified yet.
	Resend(ctx context.Context, accountID uuid.UUID) (string, *entity.Account, error)
}
