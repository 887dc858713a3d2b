// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new account.
type RegisterAccountInput struct {
	Username string
	Email    string
	Password string
	// VerificationURLBase is the scheme and host the verification link is built on.
	VerificationURLBase string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResendVerificationInput defines the data required to re-send the verification message.
type ResendVerificationInput struct {
	AccountID           uuid.UUID
	VerificationURLBase string
}

// --- Output DTOs ---

// RegisterAccountOutput returns the newly created account.
type RegisterAccountOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens  *entity.TokenPair
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterAccount(ctx context.Context, input *RegisterAccountInput) (*RegisterAccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, accountID uuid.UUID) error
	RefreshSession(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	VerifyEmail(ctx context.Context, token string) (*entity.Account, error)
	ResendVerification(ctx context.Context, input *ResendVerificationInput) error
	ValidateRequest(ctx context.Context, accessToken string) (uuid.UUID, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
