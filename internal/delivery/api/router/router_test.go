package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/delivery/api/validator"
	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	mockusecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo      *echo.Echo
	accounts  *mockusecase.MockAccountUsecase
	validator *mockusecase.MockSessionValidator
}

func newTestAPI(t *testing.T, mutate ...func(*config.Config)) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://auth.gatekeeper.test/"
	cfg.HTTP.Cookie.Secure = true
	for _, fn := range mutate {
		fn(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := mockusecase.NewMockAccountUsecase(t)
	sessionValidator := mockusecase.NewMockSessionValidator(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			Usecase: accounts,
			Config:  cfg,
			Logger:  logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(sessionValidator),
		Config:         cfg,
	}).RegisterRoutes(e)

	return &testAPI{echo: e, accounts: accounts, validator: sessionValidator}
}

func (a *testAPI) do(method, target, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func withCookie(name, value string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func testAccount() *entity.Account {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Account{
		ID:        uuid.MustParse("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"),
		Username:  "alice",
		Email:     "a@x.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testTokens() *entity.TokenPair {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.TokenPair{
		AccessToken:      "access-1",
		RefreshToken:     "refresh-1",
		IssuedAt:         now,
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
	}
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()

	api.accounts.EXPECT().
		RegisterAccount(mock.Anything, &usecase.RegisterAccountInput{
			Username:            "alice",
			Email:               "a@x.com",
			Password:            "pw123456",
			VerificationURLBase: "https://auth.gatekeeper.test",
		}).
		Return(&usecase.RegisterAccountOutput{Account: account}, nil)

	rec := api.do(http.MethodPost, "/api/v1/users/register",
		`{"username":"alice","email":"a@x.com","password":"pw123456"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "User registered successfully. Verification email sent.", env.Message)
	assert.Contains(t, string(env.Data), `"username":"alice"`)
	assert.Contains(t, string(env.Data), `"isEmailVerified":false`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_BaseURLFromRequest(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) { cfg.HTTP.PublicBaseURL = "" })

	api.accounts.EXPECT().
		RegisterAccount(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterAccountInput) bool {
			return in.VerificationURLBase == "http://example.com"
		})).
		Return(&usecase.RegisterAccountOutput{Account: testAccount()}, nil)

	rec := api.do(http.MethodPost, "/api/v1/users/register",
		`{"username":"alice","email":"a@x.com","password":"pw123456"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing username", body: `{"email":"a@x.com","password":"pw"}`, field: "username"},
		{name: "bad email", body: `{"username":"alice","email":"nope","password":"pw"}`, field: "email"},
		{name: "missing password", body: `{"username":"alice","email":"a@x.com"}`, field: "password"},
		{name: "short username", body: `{"username":"al","email":"a@x.com","password":"pw"}`, field: "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(http.MethodPost, "/api/v1/users/register", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
			assert.Contains(t, string(env.Error.Details), `"field":"`+tt.field+`"`)
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/users/register", `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestRegister_Conflict(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().
		RegisterAccount(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrAccountAlreadyExists))

	rec := api.do(http.MethodPost, "/api/v1/users/register",
		`{"username":"alice","email":"a@x.com","password":"pw123456"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestLogin_SetsCookies(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "pw123456"}).
		Return(&usecase.LoginOutput{Tokens: testTokens(), Account: testAccount()}, nil)

	rec := api.do(http.MethodPost, "/api/v1/users/login", `{"email":"a@x.com","password":"pw123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, string(env.Data), `"accessToken":"access-1"`)
	assert.Contains(t, string(env.Data), `"refreshToken":"refresh-1"`)
	assert.Contains(t, string(env.Data), `"user":{`)

	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cookie := cookieByName(rec, name)
		require.NotNil(t, cookie, name)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	}
	assert.Equal(t, "access-1", cookieByName(rec, constants.AccessTokenCookie).Value)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := api.do(http.MethodPost, "/api/v1/users/login", `{"email":"a@x.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Empty(t, cookieByName(rec, constants.AccessTokenCookie))
}

func TestCurrentUser(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()

	api.validator.EXPECT().Validate(mock.Anything, "access-1").Return(account.ID, nil)
	api.accounts.EXPECT().GetCurrentAccount(mock.Anything, account.ID).Return(account, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/current-user", "", withBearer("access-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), account.ID.String())
}

func TestCurrentUser_CookieToken(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()

	api.validator.EXPECT().Validate(mock.Anything, "access-cookie").Return(account.ID, nil)
	api.accounts.EXPECT().GetCurrentAccount(mock.Anything, account.ID).Return(account, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/current-user", "",
		withCookie(constants.AccessTokenCookie, "access-cookie"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatedRoutes_RejectMissingOrInvalidToken(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		opts    []func(*http.Request)
		invalid bool
	}{
		{name: "current-user without token", method: http.MethodGet, target: "/api/v1/users/current-user"},
		{name: "logout without token", method: http.MethodPost, target: "/api/v1/users/logout"},
		{name: "resend without token", method: http.MethodPost, target: "/api/v1/users/resend-email-verification"},
		{name: "basic auth scheme", method: http.MethodGet, target: "/api/v1/users/current-user",
			opts: []func(*http.Request){func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") }}},
		{name: "rejected token", method: http.MethodGet, target: "/api/v1/users/current-user",
			opts: []func(*http.Request){withBearer("expired")}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.invalid {
				api.validator.EXPECT().Validate(mock.Anything, "expired").
					Return(uuid.Nil, errors.WithStack(domainerrors.ErrInvalidAccessToken))
			}

			rec := api.do(tt.method, tt.target, "", tt.opts...)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "ACCESS_TOKEN_INVALID", decode(t, rec).Error.Code)
		})
	}
}

func TestLogout_ClearsCookies(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			api := newTestAPI(t)
			account := testAccount()

			api.validator.EXPECT().Validate(mock.Anything, "access-1").Return(account.ID, nil)
			api.accounts.EXPECT().Logout(mock.Anything, account.ID).Return(nil)

			rec := api.do(method, "/api/v1/users/logout", "", withBearer("access-1"))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "User logged out successfully", decode(t, rec).Message)
			for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
				cookie := cookieByName(rec, name)
				require.NotNil(t, cookie, name)
				assert.Empty(t, cookie.Value)
				assert.Negative(t, cookie.MaxAge)
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		opts  []func(*http.Request)
		token string
	}{
		{name: "from body", body: `{"refreshToken":"refresh-0"}`, token: "refresh-0"},
		{name: "from cookie", opts: []func(*http.Request){withCookie(constants.RefreshTokenCookie, "refresh-c")}, token: "refresh-c"},
		{name: "body wins over cookie", body: `{"refreshToken":"refresh-0"}`,
			opts: []func(*http.Request){withCookie(constants.RefreshTokenCookie, "refresh-c")}, token: "refresh-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.accounts.EXPECT().RefreshSession(mock.Anything, tt.token).Return(testTokens(), nil)

			rec := api.do(http.MethodPost, "/api/v1/users/refresh-token", tt.body, tt.opts...)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, string(decode(t, rec).Data), `"refreshToken":"refresh-1"`)
			assert.Equal(t, "refresh-1", cookieByName(rec, constants.RefreshTokenCookie).Value)
		})
	}
}

func TestRefreshToken_Missing(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/users/refresh-token", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestRefreshToken_Rejected(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().RefreshSession(mock.Anything, "stale").
		Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid))

	rec := api.do(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"stale"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, cookieByName(rec, constants.RefreshTokenCookie))
}

func TestVerifyEmail(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()
	account.IsEmailVerified = true

	api.accounts.EXPECT().VerifyEmail(mock.Anything, "abc123").Return(account, nil)

	rec := api.do(http.MethodGet, "/api/v1/users/verify-email/abc123", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Email is verified", env.Message)
	assert.Contains(t, string(env.Data), `"isEmailVerified":true`)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().VerifyEmail(mock.Anything, "used").
		Return(nil, errors.WithStack(domainerrors.ErrVerificationTokenInvalid))

	rec := api.do(http.MethodGet, "/api/v1/users/verify-email/used", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VERIFICATION_TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestResendEmailVerification(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()

	api.validator.EXPECT().Validate(mock.Anything, "access-1").Return(account.ID, nil)
	api.accounts.EXPECT().
		ResendVerification(mock.Anything, &usecase.ResendVerificationInput{
			AccountID:           account.ID,
			VerificationURLBase: "https://auth.gatekeeper.test",
		}).
		Return(nil)

	rec := api.do(http.MethodPost, "/api/v1/users/resend-email-verification", "", withBearer("access-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mail has been sent to your email ID", decode(t, rec).Message)
}

func TestResendEmailVerification_AlreadyVerified(t *testing.T) {
	api := newTestAPI(t)
	account := testAccount()

	api.validator.EXPECT().Validate(mock.Anything, "access-1").Return(account.ID, nil)
	api.accounts.EXPECT().ResendVerification(mock.Anything, mock.Anything).
		Return(errors.WithStack(domainerrors.ErrEmailAlreadyVerified))

	rec := api.do(http.MethodPost, "/api/v1/users/resend-email-verification", "", withBearer("access-1"))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_VERIFIED", decode(t, rec).Error.Code)
}

func TestInternalErrorsAreNotExposed(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInternal, "pq: connection refused"))

	rec := api.do(http.MethodPost, "/api/v1/users/login", `{"email":"a@x.com","password":"pw"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCredentialRoutes_RateLimited(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2, ExpiresIn: time.Minute}
	})

	api.accounts.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Times(2)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := api.do(http.MethodPost, "/api/v1/users/login", `{"email":"a@x.com","password":"pw"}`)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	// The limiter does not apply to verification links.
	api.accounts.EXPECT().VerifyEmail(mock.Anything, "t").Return(testAccount(), nil)
	rec := api.do(http.MethodGet, "/api/v1/users/verify-email/t", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
