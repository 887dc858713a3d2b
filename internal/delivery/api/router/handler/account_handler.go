// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/constants"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc            usecase.AccountUsecase
	publicBaseURL string
	secureCookies bool
	logger        *slog.Logger
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Usecase usecase.AccountUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		uc:            params.Usecase,
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		secureCookies: params.Config.HTTP.Cookie.Secure,
		logger:        params.Logger,
	}
}

// Register handles account registration and sends the verification mail.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	output, err := h.uc.RegisterAccount(ctx, &usecase.RegisterAccountInput{
		Username:            req.Username,
		Email:               req.Email,
		Password:            req.Password,
		VerificationURLBase: h.baseURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Account registered",
		slog.String("account_id", output.Account.ID.String()),
	)

	return response.Success(c, http.StatusCreated,
		accountEnvelope{User: toAccountResponse(output.Account)},
		"User registered successfully. Verification email sent.")
}

// Login checks credentials and sets the session cookies.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.Tokens)

	return response.Success(c, http.StatusOK, loginResponse{
		User:           toAccountResponse(output.Account),
		tokensResponse: toTokensResponse(output.Tokens),
	}, "User logged in successfully")
}

// Logout revokes the session and clears the cookies.
func (h *AccountHandler) Logout(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidAccessToken, "account missing from context")
	}

	if err := h.uc.Logout(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "User logged out successfully")
}

// CurrentUser returns the authenticated account.
func (h *AccountHandler) CurrentUser(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidAccessToken, "account missing from context")
	}

	account, err := h.uc.GetCurrentAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Current user fetched successfully")
}

// VerifyEmail consumes the token from the verification link.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "email verification token is missing")
	}

	account, err := h.uc.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountEnvelope{User: toAccountResponse(account)}, "Email is verified")
}

// ResendEmailVerification sends a fresh verification link to the authenticated account.
func (h *AccountHandler) ResendEmailVerification(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidAccessToken, "account missing from context")
	}

	err := h.uc.ResendVerification(c.Request().Context(), &usecase.ResendVerificationInput{
		AccountID:           accountID,
		VerificationURLBase: h.baseURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, struct{}{}, "Mail has been sent to your email ID")
}

// RefreshToken rotates the refresh token from the body or, failing that, the cookie.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid refresh token input")
		}
	}

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		if cookie, err := c.Cookie(constants.RefreshTokenCookie); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token is missing")
	}

	tokens, err := h.uc.RefreshSession(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, tokens)

	return response.Success(c, http.StatusOK, toTokensResponse(tokens), "Access token refreshed")
}

// baseURL is the configured public URL, or the scheme and host the request came in on.
func (h *AccountHandler) baseURL(c echo.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}
