package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/mail"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           bcrypt.MinCost,
			HashConcurrency:      2,
			AccessTokenTTL:       15 * time.Minute,
			RefreshTokenTTL:      7 * 24 * time.Hour,
			VerificationTokenTTL: 20 * time.Minute,
			Issuer:               "gatekeeper-test",
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	return cfg
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type sentMail struct {
	Address string
	Subject string
	Content string
}

// recordingMailer keeps every message it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(_ context.Context, address, subject, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMail{Address: address, Subject: subject, Content: content})

	return nil
}

func (m *recordingMailer) last(t *testing.T) sentMail {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	require.NotEmpty(t, m.sent, "no mail was sent")

	return m.sent[len(m.sent)-1]
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

// countingHasher counts password comparisons and can be told to fail them.
type countingHasher struct {
	service.PasswordHasher

	checks   atomic.Int32
	checkErr error
}

func (h *countingHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	h.checks.Add(1)
	if h.checkErr != nil {
		return false, h.checkErr
	}

	return h.PasswordHasher.Check(ctx, password, hash)
}

var verificationLinkPattern = regexp.MustCompile(`/api/v1/users/verify-email/([0-9a-f]+)`)

// tokenFromMail extracts the plaintext verification token from a rendered message.
func tokenFromMail(t *testing.T, msg sentMail) string {
	t.Helper()

	match := verificationLinkPattern.FindStringSubmatch(msg.Content)
	require.Len(t, match, 2, "verification link not found in %q", msg.Content)

	return match[1]
}

// testServices wires the real services over the in-memory store.
type testServices struct {
	cfg          *config.Config
	clock        *fakeClock
	repo         repository.AccountRepository
	hasher       *countingHasher
	tokens       service.TokenService
	mailer       *recordingMailer
	sessions     usecase.SessionUsecase
	validator    usecase.SessionValidator
	verification usecase.VerificationUsecase
	accounts     usecase.AccountUsecase
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	cfg := newTestConfig()
	clock := newFakeClock()
	logger := newDiscardLogger()
	repo := memory.NewAccountRepository()

	tokens, err := auth.NewJWTService(cfg, clock)
	require.NoError(t, err)

	sessions := NewSessionService(SessionServiceParams{
		AccountRepo:  repo,
		TokenService: tokens,
		Logger:       logger,
	})
	validator := NewSessionValidator(tokens, logger)
	verification := NewVerificationService(VerificationServiceParams{
		AccountRepo: repo,
		Generator:   auth.NewVerificationTokenGenerator(),
		Clock:       clock,
		Config:      cfg,
		Logger:      logger,
	})
	mailer := &recordingMailer{}
	hasher := &countingHasher{PasswordHasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost, 2)}
	accounts := NewAccountService(AccountServiceParams{
		TxManager:    memory.NewTransactionManager(repo),
		AccountRepo:  repo,
		Hasher:       hasher,
		Sessions:     sessions,
		Validator:    validator,
		Verification: verification,
		Mailer:       mailer,
		Renderer:     mail.NewTemplateRenderer(),
		Config:       cfg,
		Logger:       logger,
	})

	return &testServices{
		cfg:          cfg,
		clock:        clock,
		repo:         repo,
		hasher:       hasher,
		tokens:       tokens,
		mailer:       mailer,
		sessions:     sessions,
		validator:    validator,
		verification: verification,
		accounts:     accounts,
	}
}

func (s *testServices) register(t *testing.T, username, email, password string) *usecase.RegisterAccountOutput {
	t.Helper()

	out, err := s.accounts.RegisterAccount(context.Background(), &usecase.RegisterAccountInput{
		Username:            username,
		Email:               email,
		Password:            password,
		VerificationURLBase: "https://auth.example.com",
	})
	require.NoError(t, err)

	return out
}
