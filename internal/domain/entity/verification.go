package entity

import (
	"crypto/subtle"
	"time"
)

// VerificationState holds the digest and absolute expiry of the outstanding
// email verification token. Both fields are set together and cleared together.
type VerificationState struct {
	TokenHash string
	ExpiresAt *time.Time
}

// IsOutstanding reports whether a verification token has been issued and not yet consumed.
func (v VerificationState) IsOutstanding() bool {
	return v.TokenHash != "" && v.ExpiresAt != nil
}

// IsValidAt reports whether the outstanding token is still usable at now.
func (v VerificationState) IsValidAt(now time.Time) bool {
	return v.IsOutstanding() && now.Before(*v.ExpiresAt)
}

// Matches reports whether tokenHash equals the stored digest and is usable at now.
func (v VerificationState) Matches(tokenHash string, now time.Time) bool {
	if !v.IsValidAt(now) || tokenHash == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(v.TokenHash), []byte(tokenHash)) == 1
}

func (v VerificationState) clone() VerificationState {
	if v.ExpiresAt != nil {
		expiresAt := *v.ExpiresAt
		v.ExpiresAt = &expiresAt
	}

	return v
}
