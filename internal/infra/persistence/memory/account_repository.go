// Package memory provides an in-process account store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountRepository keeps accounts in a map guarded by one mutex.
// Entities are cloned on the way in and out so callers never share state with the store.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*entity.Account
	now      func() time.Time
}

// NewAccountRepository returns an empty in-memory store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[uuid.UUID]*entity.Account),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email || existing.Username == account.Username {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email or username already exists")
		}
	}

	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	} else if _, taken := r.accounts[account.ID]; taken {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("account id already exists")
	}

	now := r.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	r.accounts[account.ID] = account.Clone()

	return nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.findFirst(ctx, func(a *entity.Account) bool { return a.ID == id })
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findFirst(ctx, func(a *entity.Account) bool { return a.Email == email })
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findFirst(ctx, func(a *entity.Account) bool { return a.Username == username })
}

func (r *accountRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	_, err := r.findFirst(ctx, func(a *entity.Account) bool {
		return a.Email == email || a.Username == username
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *accountRepository) FindByVerificationHash(ctx context.Context, tokenHash string, now time.Time) (*entity.Account, error) {
	return r.findFirst(ctx, func(a *entity.Account) bool { return a.Verification.Matches(tokenHash, now) })
}

func (r *accountRepository) UpdateSessionFields(ctx context.Context, id uuid.UUID, session entity.SessionState) error {
	return r.mutate(ctx, id, func(a *entity.Account) error {
		a.Session = normalizeSession(session)

		return nil
	})
}

func (r *accountRepository) CompareAndSwapSession(ctx context.Context, id uuid.UUID, expectedTokenHash string, next entity.SessionState) error {
	err := r.mutate(ctx, id, func(a *entity.Account) error {
		if !a.Session.Matches(expectedTokenHash) {
			return repository.ErrStaleSession
		}
		a.Session = normalizeSession(next)

		return nil
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return repository.ErrStaleSession
	}

	return err
}

func (r *accountRepository) UpdateVerificationFields(ctx context.Context, id uuid.UUID, verification entity.VerificationState) error {
	return r.mutate(ctx, id, func(a *entity.Account) error {
		if verification.IsOutstanding() {
			a.Verification = entity.VerificationState{TokenHash: verification.TokenHash, ExpiresAt: cloneTime(verification.ExpiresAt)}
		} else {
			a.Verification = entity.VerificationState{}
		}

		return nil
	})
}

func (r *accountRepository) ConsumeVerification(ctx context.Context, id uuid.UUID, tokenHash string, now time.Time) error {
	err := r.mutate(ctx, id, func(a *entity.Account) error {
		if !a.Verification.Matches(tokenHash, now) {
			return repository.ErrVerificationNotConsumable
		}
		a.IsEmailVerified = true
		a.Verification = entity.VerificationState{}

		return nil
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return repository.ErrVerificationNotConsumable
	}

	return err
}

func (r *accountRepository) findFirst(ctx context.Context, match func(*entity.Account) bool) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if match(account) {
			return account.Clone(), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// mutate applies fn to the stored account under the write lock. The account is
// changed only when fn succeeds.
func (r *accountRepository) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Account) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	updated := stored.Clone()
	if err := fn(updated); err != nil {
		return err
	}
	updated.UpdatedAt = r.now()
	r.accounts[id] = updated

	return nil
}

func normalizeSession(session entity.SessionState) entity.SessionState {
	if !session.IsActive() {
		return entity.NoSession()
	}

	return entity.SessionState{
		Status:    entity.SessionStatusActive,
		TokenHash: session.TokenHash,
		IssuedAt:  cloneTime(session.IssuedAt),
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}
