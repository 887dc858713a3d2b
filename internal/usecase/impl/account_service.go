package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
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

// verifyEmailPath is the route the verification link points at.
const verifyEmailPath = "/api/v1/users/verify-email/"

// unknownAccountPassword is hashed once and compared against on logins for unknown emails.
const unknownAccountPassword = "gatekeeper-unknown-account"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	hasher          service.PasswordHasher
	sessions        usecase.SessionUsecase
	validator       usecase.SessionValidator
	verification    usecase.VerificationUsecase
	mailer          service.Mailer
	renderer        service.MailRenderer
	verificationTTL time.Duration
	logger          *slog.Logger

	dummyMu   sync.Mutex
	dummyHash string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	Sessions     usecase.SessionUsecase
	Validator    usecase.SessionValidator
	Verification usecase.VerificationUsecase
	Mailer       service.Mailer
	Renderer     service.MailRenderer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		hasher:          params.Hasher,
		sessions:        params.Sessions,
		validator:       params.Validator,
		verification:    params.Verification,
		mailer:          params.Mailer,
		renderer:        params.Renderer,
		verificationTTL: verificationTTL(params.Config),
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterAccount creates an unverified account and sends it a verification link.
func (srv *accountService) RegisterAccount(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username, email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	exists, err := srv.accountRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing accounts")
	}
	if exists {
		return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email or username already registered")
	}

	// Hash outside the transaction so the slow part never holds a connection.
	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Session:      entity.NoSession(),
	}

	var plaintext string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		token, err := srv.verification.IssueWith(ctx, accountRepo, account)
		if err != nil {
			return errors.Wrap(err, "failed to issue verification token")
		}
		plaintext = token

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	if err := srv.sendVerification(ctx, account, plaintext, input.VerificationURLBase); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.Any("account_id", account.ID))

	return &usecase.RegisterAccountOutput{Account: account}, nil
}

// Login checks the credentials and starts a new session, replacing any previous one.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, srv.rejectUnknownAccount(ctx, input.Password)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	matched, err := srv.hasher.Check(ctx, input.Password, account.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check password")
	}
	if !matched {
		srv.log(ctx).Info("Login failed", slog.Any("account_id", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	}

	tokens, err := srv.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{Tokens: tokens, Account: account}, nil
}

// rejectUnknownAccount spends one hash comparison so an unknown email costs the same as a wrong password.
func (srv *accountService) rejectUnknownAccount(ctx context.Context, password string) error {
	hash, err := srv.unknownAccountHash(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to prepare password check")
	}
	if _, err := srv.hasher.Check(ctx, password, hash); err != nil {
		return errors.Wrap(err, "failed to check password")
	}

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
}

// unknownAccountHash hashes unknownAccountPassword at the configured cost on first use.
// A failed attempt is not cached.
func (srv *accountService) unknownAccountHash(ctx context.Context) (string, error) {
	srv.dummyMu.Lock()
	defer srv.dummyMu.Unlock()

	if srv.dummyHash != "" {
		return srv.dummyHash, nil
	}

	hash, err := srv.hasher.Hash(ctx, unknownAccountPassword)
	if err != nil {
		return "", err
	}
	srv.dummyHash = hash

	return hash, nil
}

// Logout revokes the account's refresh session.
func (srv *accountService) Logout(ctx context.Context, accountID uuid.UUID) error {
	return srv.sessions.Revoke(ctx, accountID)
}

// RefreshSession rotates a refresh token.
func (srv *accountService) RefreshSession(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	return srv.sessions.Refresh(ctx, refreshToken)
}

// VerifyEmail consumes a verification token.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) (*entity.Account, error) {
	return srv.verification.Consume(ctx, token)
}

// ResendVerification issues a new verification token and sends it.
func (srv *accountService) ResendVerification(ctx context.Context, input *usecase.ResendVerificationInput) error {
	plaintext, account, err := srv.verification.Resend(ctx, input.AccountID)
	if err != nil {
		return err
	}

	return srv.sendVerification(ctx, account, plaintext, input.VerificationURLBase)
}

// ValidateRequest authenticates an access token.
func (srv *accountService) ValidateRequest(ctx context.Context, accessToken string) (uuid.UUID, error) {
	return srv.validator.Validate(ctx, accessToken)
}

// GetCurrentAccount loads the authenticated account.
func (srv *accountService) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *accountService) sendVerification(ctx context.Context, account *entity.Account, plaintext, urlBase string) error {
	subject, content, err := srv.renderer.RenderVerification(service.VerificationMail{
		Username:        account.Username,
		VerificationURL: verificationURL(urlBase, plaintext),
		ExpiresIn:       srv.verificationTTL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to render verification mail")
	}

	if err := srv.mailer.Send(ctx, account.Email, subject, content); err != nil {
		srv.log(ctx).Error("Failed to dispatch verification mail",
			slog.Any("account_id", account.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to dispatch verification mail")
	}

	return nil
}

func verificationURL(base, token string) string {
	return strings.TrimRight(base, "/") + verifyEmailPath + url.PathEscape(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
