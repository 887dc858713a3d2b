package auth

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"
)

// verificationTokenBytes is the entropy of a verification token (256 bits).
const verificationTokenBytes = 32

type verificationTokenGenerator struct {
	random io.Reader
}

// NewVerificationTokenGenerator returns a generator backed by crypto/rand.
func NewVerificationTokenGenerator() service.VerificationTokenGenerator {
	return &verificationTokenGenerator{random: rand.Reader}
}

// Generate returns a hex plaintext token and its SHA-256 hex digest.
func (g *verificationTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	plaintext := hex.EncodeToString(buf)

	return plaintext, g.Hash(plaintext), nil
}

// Hash returns the SHA-256 hex digest of plaintext.
func (g *verificationTokenGenerator) Hash(plaintext string) string {
	return util.SHA256Hex(plaintext)
}
