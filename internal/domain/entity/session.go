package entity

import (
	"crypto/subtle"
	"time"
)

// SessionStatus tags which variant a SessionState holds.
type SessionStatus int

const (
	SessionStatusNone SessionStatus = iota
	SessionStatusActive
)

// SessionState is either NoSession or ActiveSession. An account holds at most one
// active refresh session; issuing a new one replaces the previous one.
type SessionState struct {
	Status    SessionStatus
	TokenHash string     // SHA-256 hex digest of the refresh token. Empty when no session.
	IssuedAt  *time.Time // When the refresh token was minted. Nil when no session.
}

// NoSession returns the state of an account that is logged out.
func NoSession() SessionState {
	return SessionState{Status: SessionStatusNone}
}

// ActiveSession returns the state holding the digest of a freshly issued refresh token.
func ActiveSession(tokenHash string, issuedAt time.Time) SessionState {
	return SessionState{
		Status:    SessionStatusActive,
		TokenHash: tokenHash,
		IssuedAt:  &issuedAt,
	}
}

// IsActive reports whether a refresh session is currently held.
func (s SessionState) IsActive() bool {
	return s.Status == SessionStatusActive && s.TokenHash != ""
}

// Matches reports whether tokenHash equals the stored digest, in constant time.
func (s SessionState) Matches(tokenHash string) bool {
	if !s.IsActive() || tokenHash == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(s.TokenHash), []byte(tokenHash)) == 1
}

func (s SessionState) clone() SessionState {
	if s.IssuedAt != nil {
		issuedAt := *s.IssuedAt
		s.IssuedAt = &issuedAt
	}

	return s
}
