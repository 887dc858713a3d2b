package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for refresh session management.
// An account holds at most one refresh session at a time.
type SessionUsecase interface {
	// Issue mints a new token pair and replaces whatever session the account held.
	Issue(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error)
	// Revoke drops the account's session so no earlier refresh token can be used.
	Revoke(ctx context.Context, accountID uuid.UUID) error
	// Refresh rotates a presented refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}

// SessionValidator authenticates requests from their access token alone.
type SessionValidator interface {
	Validate(ctx context.Context, accessToken string) (uuid.UUID, error)
}
