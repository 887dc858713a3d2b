// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single identity that can log in.
type Account struct {
	ID              uuid.UUID         // Assigned at creation and never changed afterwards.
	Username        string            // Unique across all accounts.
	Email           string            // Unique across all accounts, used as the login identifier.
	PasswordHash    string            // bcrypt output. The plaintext password is never kept.
	IsEmailVerified bool              // Flips to true once, when a verification token is consumed.
	Verification    VerificationState // Outstanding email verification token, if any.
	Session         SessionState      // The single active refresh session, if any.
	CreatedAt       time.Time         // Timestamp of when this account was created.
	UpdatedAt       time.Time         // Timestamp of the last modification to this account.
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Verification = a.Verification.clone()
	clone.Session = a.Session.clone()

	return &clone
}
