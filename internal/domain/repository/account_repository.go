// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrStaleSession is returned by CompareAndSwapSession when the stored session no longer matches.
	ErrStaleSession = errors.New("session changed concurrently")
	// ErrVerificationNotConsumable is returned by ConsumeVerification when the stored token no
	// longer matches or has expired.
	ErrVerificationNotConsumable = errors.New("verification token cannot be consumed")
)

// AccountRepository defines the persistence operations for accounts.
// Every mutating method touches only the columns it names, in a single statement.
type AccountRepository interface {
	// Create persists a new account. ID, CreatedAt and UpdatedAt are filled in when zero.
	// Returns domainerrors.ErrAccountAlreadyExists when the email or username is taken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// ExistsByEmailOrUsername reports whether an account already uses either value.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// FindByVerificationHash retrieves the account whose outstanding verification token
	// has the given digest and expires after now.
	FindByVerificationHash(ctx context.Context, tokenHash string, now time.Time) (*entity.Account, error)

	// UpdateSessionFields overwrites the session unconditionally.
	UpdateSessionFields(ctx context.Context, id uuid.UUID, session entity.SessionState) error

	// CompareAndSwapSession replaces the session only if the stored digest equals expectedTokenHash.
	// Returns ErrStaleSession otherwise.
	CompareAndSwapSession(ctx context.Context, id uuid.UUID, expectedTokenHash string, next entity.SessionState) error

	// UpdateVerificationFields overwrites the outstanding verification token.
	UpdateVerificationFields(ctx context.Context, id uuid.UUID, verification entity.VerificationState) error

	// ConsumeVerification marks the email verified and clears the verification fields, only if the
	// stored digest still equals tokenHash and has not expired at now.
	ConsumeVerification(ctx context.Context, id uuid.UUID, tokenHash string, now time.Time) error
}
