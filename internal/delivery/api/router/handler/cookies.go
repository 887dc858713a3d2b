package handler

import (
	"net/http"
	"time"

	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// setSessionCookies stores both tokens as httpOnly, SameSite=Strict cookies.
func (h *AccountHandler) setSessionCookies(c echo.Context, tokens *entity.TokenPair) {
	c.SetCookie(h.sessionCookie(constants.AccessTokenCookie, tokens.AccessToken, tokens.AccessExpiresAt))
	c.SetCookie(h.sessionCookie(constants.RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshExpiresAt))
}

func (h *AccountHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cookie := h.sessionCookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (h *AccountHandler) sessionCookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
