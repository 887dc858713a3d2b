// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "find account by id", "id = ?", id)
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "find account by email", "email = ?", email)
}

// FindByUsername retrieves a single account by its username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "find account by username", "username = ?", username)
}

// ExistsByEmailOrUsername reports whether any account uses the email or the username.
func (repo *accountRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check account existence")
	}

	return count > 0, nil
}

// FindByVerificationHash retrieves the account holding an unexpired verification token with this digest.
func (repo *accountRepository) FindByVerificationHash(ctx context.Context, tokenHash string, now time.Time) (*entity.Account, error) {
	return repo.findOne(ctx, "find account by verification token",
		"email_verification_token_hash = ? AND email_verification_token_expiry > ?", tokenHash, now)
}

// UpdateSessionFields overwrites the session columns unconditionally.
func (repo *accountRepository) UpdateSessionFields(ctx context.Context, id uuid.UUID, session entity.SessionState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(sessionColumns(session))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// CompareAndSwapSession replaces the session only while the stored digest equals expectedTokenHash.
func (repo *accountRepository) CompareAndSwapSession(ctx context.Context, id uuid.UUID, expectedTokenHash string, next entity.SessionState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND refresh_token_hash = ?", id, expectedTokenHash).
		Updates(sessionColumns(next))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleSession
	}

	return nil
}

// UpdateVerificationFields overwrites the verification columns.
func (repo *accountRepository) UpdateVerificationFields(ctx context.Context, id uuid.UUID, verification entity.VerificationState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(verificationColumns(verification))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update verification token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ConsumeVerification marks the email verified and clears the token in one conditional statement.
func (repo *accountRepository) ConsumeVerification(ctx context.Context, id uuid.UUID, tokenHash string, now time.Time) error {
	columns := verificationColumns(entity.VerificationState{})
	columns["is_email_verified"] = true

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND email_verification_token_hash = ? AND email_verification_token_expiry > ?", id, tokenHash, now).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume verification token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotConsumable
	}

	return nil
}

func (repo *accountRepository) findOne(ctx context.Context, op string, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where(query, args...).First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to "+op)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

func sessionColumns(session entity.SessionState) map[string]any {
	if !session.IsActive() {
		return map[string]any{
			"refresh_token_hash": nil,
			"session_issued_at":  nil,
		}
	}

	return map[string]any{
		"refresh_token_hash": session.TokenHash,
		"session_issued_at":  session.IssuedAt,
	}
}

func verificationColumns(verification entity.VerificationState) map[string]any {
	if !verification.IsOutstanding() {
		return map[string]any{
			"email_verification_token_hash":   nil,
			"email_verification_token_expiry": nil,
		}
	}

	return map[string]any{
		"email_verification_token_hash":   verification.TokenHash,
		"email_verification_token_expiry": verification.ExpiresAt,
	}
}
