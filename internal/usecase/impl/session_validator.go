package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionValidator checks access tokens without touching the store, so a revoked
// session keeps its outstanding access tokens alive until they expire.
type sessionValidator struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionValidator is the constructor for sessionValidator.
func NewSessionValidator(tokenService service.TokenService, logger *slog.Logger) usecase.SessionValidator {
	return &sessionValidator{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Validate returns the account the access token was issued to.
func (v *sessionValidator) Validate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	if accessToken == "" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidAccessToken, "access token is missing")
	}

	claims, err := v.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, v.logger).Debug("Access token rejected", slog.Any("error", err))

		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidAccessToken, "access token failed validation")
	}

	return claims.AccountID, nil
}
