package postgres

import (
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/persistence/model"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		IsEmailVerified: m.IsEmailVerified,
		Session:         entity.NoSession(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.EmailVerificationTokenHash != nil && m.EmailVerificationTokenExpiry != nil {
		expiresAt := *m.EmailVerificationTokenExpiry
		account.Verification = entity.VerificationState{
			TokenHash: *m.EmailVerificationTokenHash,
			ExpiresAt: &expiresAt,
		}
	}

	if m.RefreshTokenHash != nil && *m.RefreshTokenHash != "" {
		var issuedAt time.Time
		if m.SessionIssuedAt != nil {
			issuedAt = *m.SessionIssuedAt
		}
		account.Session = entity.ActiveSession(*m.RefreshTokenHash, issuedAt)
	}

	return account
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	m := &model.AccountModel{
		ID:              account.ID,
		Username:        account.Username,
		Email:           account.Email,
		PasswordHash:    account.PasswordHash,
		IsEmailVerified: account.IsEmailVerified,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}

	if account.Verification.IsOutstanding() {
		tokenHash := account.Verification.TokenHash
		expiresAt := *account.Verification.ExpiresAt
		m.EmailVerificationTokenHash = &tokenHash
		m.EmailVerificationTokenExpiry = &expiresAt
	}

	if account.Session.IsActive() {
		tokenHash := account.Session.TokenHash
		m.RefreshTokenHash = &tokenHash
		m.SessionIssuedAt = account.Session.IssuedAt
	}

	return m
}
