package service

// VerificationTokenGenerator produces single-use email verification tokens.
type VerificationTokenGenerator interface {
	// Generate returns a fresh random plaintext token and the digest to persist.
	Generate() (plaintext string, tokenHash string, err error)

	// Hash returns the digest of a presented plaintext token.
	Hash(plaintext string) string
}
