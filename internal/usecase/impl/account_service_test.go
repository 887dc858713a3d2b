package impl

import (
	"context"
	"strings"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/mail"
	"gatekeeper/internal/infra/persistence/memory"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockService "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_RegisterAndVerifyEndToEnd(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	out := s.register(t, "alice", "a@x.com", "pw123")
	require.NotNil(t, out.Account)
	assert.NotEqual(t, uuid.Nil, out.Account.ID)
	assert.False(t, out.Account.IsEmailVerified)
	assert.NotEqual(t, "pw123", out.Account.PasswordHash)

	msg := s.mailer.last(t)
	assert.Equal(t, "a@x.com", msg.Address)
	assert.Equal(t, "Verify your email", msg.Subject)
	assert.Contains(t, msg.Content, "https://auth.example.com/api/v1/users/verify-email/")
	token := tokenFromMail(t, msg)

	stored, err := s.repo.FindByID(ctx, out.Account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verification.IsOutstanding())
	assert.NotContains(t, stored.Verification.TokenHash, token)

	verified, err := s.accounts.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.True(t, verified.IsEmailVerified)

	stored, err = s.repo.FindByID(ctx, out.Account.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsEmailVerified)
	assert.Empty(t, stored.Verification.TokenHash)
	assert.Nil(t, stored.Verification.ExpiresAt)

	_, err = s.accounts.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenInvalid)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterAccountInput
	}{
		{name: "missing username", input: usecase.RegisterAccountInput{Email: "a@x.com", Password: "pw123"}},
		{name: "blank username", input: usecase.RegisterAccountInput{Username: "  ", Email: "a@x.com", Password: "pw123"}},
		{name: "missing email", input: usecase.RegisterAccountInput{Username: "alice", Password: "pw123"}},
		{name: "missing password", input: usecase.RegisterAccountInput{Username: "alice", Email: "a@x.com"}},
		{name: "password too long", input: usecase.RegisterAccountInput{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)

			out, err := s.accounts.RegisterAccount(context.Background(), &tt.input)

			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, 0, s.mailer.count())
		})
	}
}

func TestAccountService_RegisterDuplicate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same email", username: "bob", email: "a@x.com"},
		{name: "same email different case", username: "bob", email: " A@X.com "},
		{name: "same username", username: "alice", email: "b@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			s.register(t, "alice", "a@x.com", "pw123")

			_, err := s.accounts.RegisterAccount(context.Background(), &usecase.RegisterAccountInput{
				Username: tt.username,
				Email:    tt.email,
				Password: "pw456",
			})

			assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
			assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
			assert.Equal(t, 1, s.mailer.count())
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	registered := s.register(t, "alice", "a@x.com", "pw123").Account

	out, err := s.accounts.Login(ctx, &usecase.LoginInput{Email: "A@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.Account.ID)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)

	accountID, err := s.accounts.ValidateRequest(ctx, out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, accountID)

	current, err := s.accounts.GetCurrentAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "alice", current.Username)
}

func TestAccountService_LoginRejectsBadCredentialsUniformly(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.register(t, "alice", "a@x.com", "pw123")

	_, wrongPassword := s.accounts.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "nope"})
	_, unknownEmail := s.accounts.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "pw123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	_, missing := s.accounts.Login(ctx, &usecase.LoginInput{Email: "a@x.com"})
	assert.ErrorIs(t, missing, domainerrors.ErrValidationFailed)
}

func TestAccountService_LoginComparesOneHashPerAttempt(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.register(t, "alice", "a@x.com", "pw123")

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{name: "wrong password", input: &usecase.LoginInput{Email: "a@x.com", Password: "nope"}},
		{name: "unknown email", input: &usecase.LoginInput{Email: "ghost@x.com", Password: "pw123"}},
		{name: "unknown email with the placeholder password", input: &usecase.LoginInput{Email: "ghost@x.com", Password: unknownAccountPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.hasher.checks.Load()

			_, err := s.accounts.Login(ctx, tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Equal(t, int32(1), s.hasher.checks.Load()-before)
		})
	}
}

func TestAccountService_LoginReportsHasherFailure(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "known email", email: "a@x.com"},
		{name: "unknown email", email: "ghost@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			s.register(t, "alice", "a@x.com", "pw123")
			s.hasher.checkErr = context.Canceled

			_, err := s.accounts.Login(context.Background(), &usecase.LoginInput{Email: tt.email, Password: "pw123"})

			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
			assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
		})
	}
}

func TestAccountService_LogoutThenRefreshFails(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.register(t, "alice", "a@x.com", "pw123")

	login, err := s.accounts.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	refreshed, err := s.accounts.RefreshSession(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, s.accounts.Logout(ctx, login.Account.ID))

	_, err = s.accounts.RefreshSession(ctx, refreshed.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_SecondLoginRevokesFirst(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.register(t, "alice", "a@x.com", "pw123")

	first, err := s.accounts.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	_, err = s.accounts.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = s.accounts.RefreshSession(ctx, first.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_ResendVerification(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	account := s.register(t, "alice", "a@x.com", "pw123").Account

	err := s.accounts.ResendVerification(ctx, &usecase.ResendVerificationInput{
		AccountID:           account.ID,
		VerificationURLBase: "https://auth.example.com/",
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.mailer.count())

	msg := s.mailer.last(t)
	assert.NotContains(t, msg.Content, "example.com//api")

	_, err = s.accounts.VerifyEmail(ctx, tokenFromMail(t, msg))
	require.NoError(t, err)

	err = s.accounts.ResendVerification(ctx, &usecase.ResendVerificationInput{AccountID: account.ID})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyVerified)
	assert.Equal(t, 2, s.mailer.count())
}

func TestAccountService_GetCurrentAccountUnknown(t *testing.T) {
	s := newTestServices(t)

	_, err := s.accounts.GetCurrentAccount(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAccountService_RegisterReportsDispatchFailure(t *testing.T) {
	cfg := newTestConfig()
	clock := newFakeClock()
	logger := newDiscardLogger()
	repo := memory.NewAccountRepository()
	mailer := mockService.NewMockMailer(t)

	tokens, err := auth.NewJWTService(cfg, clock)
	require.NoError(t, err)

	srv := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(repo),
		AccountRepo: repo,
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost, 1),
		Sessions:    NewSessionService(SessionServiceParams{AccountRepo: repo, TokenService: tokens, Logger: logger}),
		Validator:   NewSessionValidator(tokens, logger),
		Verification: NewVerificationService(VerificationServiceParams{
			AccountRepo: repo,
			Generator:   auth.NewVerificationTokenGenerator(),
			Clock:       clock,
			Config:      cfg,
			Logger:      logger,
		}),
		Mailer:   mailer,
		Renderer: mail.NewTemplateRenderer(),
		Config:   cfg,
		Logger:   logger,
	})

	mailer.EXPECT().
		Send(mock.Anything, "a@x.com", "Verify your email", mock.AnythingOfType("string")).
		Return(errors.New("topic unavailable"))

	out, err := srv.RegisterAccount(context.Background(), &usecase.RegisterAccountInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAccountService_RegisterUsesTransactionBoundRepository(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	txRepo := mockRepo.NewMockAccountRepository(t)
	verification := NewVerificationService(VerificationServiceParams{
		AccountRepo: accountRepo,
		Generator:   auth.NewVerificationTokenGenerator(),
		Clock:       newFakeClock(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	srv := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost, 1),
		Verification: verification,
		Mailer:       &recordingMailer{},
		Renderer:     mail.NewTemplateRenderer(),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	accountRepo.EXPECT().ExistsByEmailOrUsername(ctx, "a@x.com", "alice").Return(false, nil)
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAccountRepository().Return(txRepo)

			txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(_ context.Context, account *entity.Account) { account.ID = uuid.New() }).
				Return(nil)
			txRepo.EXPECT().
				UpdateVerificationFields(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("entity.VerificationState")).
				Return(nil)

			return fn(factory)
		})

	out, err := srv.RegisterAccount(ctx, &usecase.RegisterAccountInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.True(t, out.Account.Verification.IsOutstanding())
}
