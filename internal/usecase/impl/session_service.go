// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue mints a token pair and overwrites the stored session with the new refresh token digest.
// Last writer wins: a concurrent login simply replaces this one.
func (srv *sessionService) Issue(ctx context.Context, accountID uuid.UUID) (*entity.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	session := entity.ActiveSession(srv.tokenService.HashToken(tokens.RefreshToken), tokens.IssuedAt)
	if err := srv.accountRepo.UpdateSessionFields(ctx, accountID, session); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("account_id", accountID))

	return tokens, nil
}

// Revoke clears the stored session.
func (srv *sessionService) Revoke(ctx context.Context, accountID uuid.UUID) error {
	if err := srv.accountRepo.UpdateSessionFields(ctx, accountID, entity.NoSession()); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Debug("Session revoked", slog.Any("account_id", accountID))

	return nil
}

// Refresh validates the presented refresh token against the stored digest and rotates it.
// Every reason for rejecting the token surfaces as the same ErrRefreshTokenInvalid.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token is missing")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token failed validation")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	presentedHash := srv.tokenService.HashToken(refreshToken)
	if !account.Session.Matches(presentedHash) {
		srv.log(ctx).Warn("Refresh token does not match the active session", slog.Any("account_id", account.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token was revoked or rotated")
	}

	tokens, err := srv.tokenService.GenerateTokens(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	next := entity.ActiveSession(srv.tokenService.HashToken(tokens.RefreshToken), tokens.IssuedAt)
	if err := srv.accountRepo.CompareAndSwapSession(ctx, account.ID, presentedHash, next); err != nil {
		if errors.Is(err, repository.ErrStaleSession) {
			srv.log(ctx).Warn("Refresh token rotated concurrently", slog.Any("account_id", account.ID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token was already used")
		}

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("account_id", account.ID))

	return tokens, nil
}
