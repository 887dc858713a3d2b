// Package repotest holds behaviour checks shared by every AccountRepository implementation.
package repotest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository for one subtest.
type Factory func(t *testing.T) repository.AccountRepository

// RunAccountRepository exercises repo against the AccountRepository contract.
func RunAccountRepository(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("create and find", func(t *testing.T) { testCreateAndFind(t, newRepo(t)) })
	t.Run("create rejects duplicates", func(t *testing.T) { testCreateRejectsDuplicates(t, newRepo(t)) })
	t.Run("exists by email or username", func(t *testing.T) { testExists(t, newRepo(t)) })
	t.Run("unknown account", func(t *testing.T) { testUnknownAccount(t, newRepo(t)) })
	t.Run("session overwrite and clear", func(t *testing.T) { testSessionFields(t, newRepo(t)) })
	t.Run("session compare and swap", func(t *testing.T) { testCompareAndSwap(t, newRepo(t)) })
	t.Run("concurrent rotation has one winner", func(t *testing.T) { testConcurrentRotation(t, newRepo(t)) })
	t.Run("verification lookup honours expiry", func(t *testing.T) { testVerificationLookup(t, newRepo(t)) })
	t.Run("verification consumed once", func(t *testing.T) { testConsumeOnce(t, newRepo(t)) })
	t.Run("narrow updates keep other fields", func(t *testing.T) { testNarrowUpdates(t, newRepo(t)) })
}

func newAccount(username string) *entity.Account {
	return &entity.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$" + username,
	}
}

func mustCreate(t *testing.T, repo repository.AccountRepository, username string) *entity.Account {
	t.Helper()

	account := newAccount(username)
	require.NoError(t, repo.Create(context.Background(), account))
	require.NotEqual(t, uuid.Nil, account.ID)

	return account
}

func testCreateAndFind(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	created := mustCreate(t, repo, "alice")
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Equal(t, created.PasswordHash, byID.PasswordHash)
	assert.False(t, byID.IsEmailVerified)
	assert.False(t, byID.Session.IsActive())
	assert.False(t, byID.Verification.IsOutstanding())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
}

func testCreateRejectsDuplicates(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	mustCreate(t, repo, "alice")

	sameEmail := newAccount("alice2")
	sameEmail.Email = "alice@example.com"
	err := repo.Create(ctx, sameEmail)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))

	sameUsername := newAccount("alice")
	sameUsername.Email = "other@example.com"
	err = repo.Create(ctx, sameUsername)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func testExists(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	mustCreate(t, repo, "alice")

	exists, err := repo.ExistsByEmailOrUsername(ctx, "alice@example.com", "nobody")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrUsername(ctx, "nobody@example.com", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrUsername(ctx, "nobody@example.com", "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func testUnknownAccount(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	missing := uuid.New()

	_, err := repo.FindByID(ctx, missing)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = repo.UpdateSessionFields(ctx, missing, entity.NoSession())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = repo.UpdateVerificationFields(ctx, missing, entity.VerificationState{})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func testSessionFields(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	issuedAt := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.ActiveSession(hashOf("first"), issuedAt)))
	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.ActiveSession(hashOf("second"), issuedAt)))

	stored, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Session.Matches(hashOf("second")))
	assert.False(t, stored.Session.Matches(hashOf("first")))
	require.NotNil(t, stored.Session.IssuedAt)
	assert.True(t, issuedAt.Equal(*stored.Session.IssuedAt))

	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.NoSession()))
	stored, err = repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, stored.Session.IsActive())
	assert.Nil(t, stored.Session.IssuedAt)
}

func testCompareAndSwap(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.ActiveSession(hashOf("r1"), now)))

	err := repo.CompareAndSwapSession(ctx, account.ID, hashOf("wrong"), entity.ActiveSession(hashOf("r2"), now))
	assert.ErrorIs(t, err, repository.ErrStaleSession)

	require.NoError(t, repo.CompareAndSwapSession(ctx, account.ID, hashOf("r1"), entity.ActiveSession(hashOf("r2"), now)))

	err = repo.CompareAndSwapSession(ctx, account.ID, hashOf("r1"), entity.ActiveSession(hashOf("r3"), now))
	assert.ErrorIs(t, err, repository.ErrStaleSession)

	stored, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Session.Matches(hashOf("r2")))

	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.NoSession()))
	err = repo.CompareAndSwapSession(ctx, account.ID, hashOf("r2"), entity.ActiveSession(hashOf("r4"), now))
	assert.ErrorIs(t, err, repository.ErrStaleSession)
}

func testConcurrentRotation(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.ActiveSession(hashOf("r1"), now)))

	const racers = 8
	var (
		wins atomic.Int32
		wg   sync.WaitGroup
	)
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			next := entity.ActiveSession(hashOf("next-"+string(rune('a'+i))), now)
			if err := repo.CompareAndSwapSession(ctx, account.ID, hashOf("r1"), next); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func testVerificationLookup(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	expiresAt := time.Now().UTC().Add(20 * time.Minute).Truncate(time.Second)

	require.NoError(t, repo.UpdateVerificationFields(ctx, account.ID, entity.VerificationState{
		TokenHash: hashOf("token"),
		ExpiresAt: &expiresAt,
	}))

	found, err := repo.FindByVerificationHash(ctx, hashOf("token"), expiresAt.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.True(t, found.Verification.IsOutstanding())

	_, err = repo.FindByVerificationHash(ctx, hashOf("token"), expiresAt)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByVerificationHash(ctx, hashOf("other"), expiresAt.Add(-time.Minute))
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func testConsumeOnce(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	expiresAt := time.Now().UTC().Add(20 * time.Minute).Truncate(time.Second)
	now := expiresAt.Add(-10 * time.Minute)

	require.NoError(t, repo.UpdateVerificationFields(ctx, account.ID, entity.VerificationState{
		TokenHash: hashOf("token"),
		ExpiresAt: &expiresAt,
	}))

	err := repo.ConsumeVerification(ctx, account.ID, hashOf("wrong"), now)
	assert.ErrorIs(t, err, repository.ErrVerificationNotConsumable)

	err = repo.ConsumeVerification(ctx, account.ID, hashOf("token"), expiresAt.Add(time.Second))
	assert.ErrorIs(t, err, repository.ErrVerificationNotConsumable)

	require.NoError(t, repo.ConsumeVerification(ctx, account.ID, hashOf("token"), now))

	err = repo.ConsumeVerification(ctx, account.ID, hashOf("token"), now)
	assert.ErrorIs(t, err, repository.ErrVerificationNotConsumable)

	stored, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsEmailVerified)
	assert.False(t, stored.Verification.IsOutstanding())
}

func testNarrowUpdates(t *testing.T, repo repository.AccountRepository) {
	ctx := context.Background()
	account := mustCreate(t, repo, "alice")
	now := time.Now().UTC().Truncate(time.Second)
	expiresAt := now.Add(20 * time.Minute)

	require.NoError(t, repo.UpdateVerificationFields(ctx, account.ID, entity.VerificationState{
		TokenHash: hashOf("token"),
		ExpiresAt: &expiresAt,
	}))
	require.NoError(t, repo.UpdateSessionFields(ctx, account.ID, entity.ActiveSession(hashOf("r1"), now)))

	stored, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verification.Matches(hashOf("token"), now))
	assert.True(t, stored.Session.Matches(hashOf("r1")))
	assert.Equal(t, account.PasswordHash, stored.PasswordHash)

	require.NoError(t, repo.ConsumeVerification(ctx, account.ID, hashOf("token"), now))
	stored, err = repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Session.Matches(hashOf("r1")))
}

func hashOf(s string) string {
	return util.SHA256Hex(s)
}
