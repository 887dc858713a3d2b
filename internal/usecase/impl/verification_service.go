package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gatekeeper/config"
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

const defaultVerificationTokenTTL = 20 * time.Minute

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	accountRepo repository.AccountRepository
	generator   service.VerificationTokenGenerator
	clock       service.Clock
	ttl         time.Duration
	logger      *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Generator   service.VerificationTokenGenerator
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		accountRepo: params.AccountRepo,
		generator:   params.Generator,
		clock:       params.Clock,
		ttl:         verificationTTL(params.Config),
		logger:      params.Logger,
	}
}

func verificationTTL(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.VerificationTokenTTL <= 0 {
		return defaultVerificationTokenTTL
	}

	return cfg.Auth.VerificationTokenTTL
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue stores a fresh verification token for the account, superseding any earlier one.
func (srv *verificationService) Issue(ctx context.Context, account *entity.Account) (string, error) {
	return srv.IssueWith(ctx, srv.accountRepo, account)
}

// IssueWith is Issue against repo instead of the service's own repository.
func (srv *verificationService) IssueWith(ctx context.Context, repo repository.AccountRepository, account *entity.Account) (string, error) {
	plaintext, tokenHash, err := srv.generator.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification token")
	}

	expiresAt := srv.clock.Now().Add(srv.ttl)
	state := entity.VerificationState{TokenHash: tokenHash, ExpiresAt: &expiresAt}
	if err := repo.UpdateVerificationFields(ctx, account.ID, state); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return "", errors.Wrap(err, "failed to store verification token")
	}
	account.Verification = state

	srv.log(ctx).Debug("Verification token issued",
		slog.Any("account_id", account.ID),
		slog.Time("expires_at", expiresAt),
	)

	return plaintext, nil
}

// Consume marks the account holding token as verified and clears the token.
// Unknown, expired and already used tokens are indistinguishable to the caller.
func (srv *verificationService) Consume(ctx context.Context, token string) (*entity.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "verification token is required")
	}

	tokenHash := srv.generator.Hash(token)
	now := srv.clock.Now()

	account, err := srv.accountRepo.FindByVerificationHash(ctx, tokenHash, now)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "no account holds this token")
		}

		return nil, errors.Wrap(err, "failed to look up verification token")
	}

	if err := srv.accountRepo.ConsumeVerification(ctx, account.ID, tokenHash, now); err != nil {
		if errors.Is(err, repository.ErrVerificationNotConsumable) {
			return nil, errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "token was consumed concurrently")
		}

		return nil, errors.Wrap(err, "failed to consume verification token")
	}

	account.IsEmailVerified = true
	account.Verification = entity.VerificationState{}

	srv.log(ctx).Info("Email verified", slog.Any("account_id", account.ID))

	return account, nil
}

// Resend issues a replacement token. A verified account is left untouched.
func (srv *verificationService) Resend(ctx context.Context, accountID uuid.UUID) (string, *entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return "", nil, errors.Wrap(err, "failed to load account")
	}

	if account.IsEmailVerified {
		return "", nil, errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "verification not required")
	}

	plaintext, err := srv.Issue(ctx, account)
	if err != nil {
		return "", nil, err
	}

	return plaintext, account, nil
}
