package auth

import (
	"context"
	"strings"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	ctx := context.Background()

	password := "pw123"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	matched, err := hasher.Check(ctx, password, hash)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestBcryptHasher_HashTwiceDiffers(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, hash := range []string{first, second} {
		matched, err := hasher.Check(ctx, "same-password", hash)
		require.NoError(t, err)
		assert.True(t, matched)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	ctx := context.Background()
	password := "pw123"

	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "different password", password: "pw124", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: password, hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", password: password, hash: "", want: false},
		{name: "foreign scheme hash", password: password, hash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := hasher.Check(ctx, tt.password, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestBcryptHasher_RejectsInvalidPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 2)

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty", password: ""},
		{name: "longer than 72 bytes", password: strings.Repeat("a", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(context.Background(), tt.password)
			require.Error(t, err)
			assert.Empty(t, hash)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestBcryptHasher_Accepts72Bytes(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	password := strings.Repeat("b", 72)

	hash, err := hasher.Hash(context.Background(), password)
	require.NoError(t, err)
	matched, err := hasher.Check(context.Background(), password, hash)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	hash, err := hasher.Hash(context.Background(), "pw123")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hasher.Hash(ctx, "pw123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	matched, err := hasher.Check(ctx, "pw123", hash)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, matched)
}

func TestNewBcryptHasherWithCost_OutOfRangeFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MaxCost+1, 1)

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)
}
