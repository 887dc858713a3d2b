// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt hashes without truncation.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
	pool *hashPool
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return NewBcryptHasherWithCost(cfg.Auth.BcryptCost, cfg.Auth.HashConcurrency)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and concurrency bound.
func NewBcryptHasherWithCost(cost, concurrency int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost: cost,
		pool: newHashPool(concurrency),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}
	if len(password) > maxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WrapMessage("password must be at most 72 bytes")
	}

	var (
		hashed  []byte
		hashErr error
	)
	if err := h.pool.run(ctx, func() {
		hashed, hashErr = bcrypt.GenerateFromPassword([]byte(password), h.cost)
	}); err != nil {
		return "", err
	}
	if hashErr != nil {
		return "", errors.Wrap(hashErr, "failed to hash password")
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	var matched bool
	if err := h.pool.run(ctx, func() {
		// err is nil if the password and hash match; malformed hashes return an error too.
		matched = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}); err != nil {
		return false, err
	}

	return matched, nil
}
