package middleware

import (
	"strings"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/constants"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests by their access token.
type AuthMiddleware struct {
	validator usecase.SessionValidator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(validator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Authenticate reads the access token from the Authorization header, falling back to the
// accessToken cookie, and stores the account ID on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessTokenFrom(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrInvalidAccessToken, "access token is missing")
		}

		accountID, err := m.validator.Validate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetAccountID(c, accountID)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithAccountLogger(c.Request().Context(), nil, accountID.String()),
		))

		return next(c)
	}
}

func accessTokenFrom(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(header[len(bearerPrefix):])
		}

		return ""
	}

	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
