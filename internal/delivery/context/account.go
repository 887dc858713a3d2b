package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyAccountID is the key for the authenticated account ID in echo.Context.
const KeyAccountID ContextKey = "account_id"

// SetAccountID stores the authenticated account ID in echo.Context.
func SetAccountID(c echo.Context, accountID uuid.UUID) {
	c.Set(string(KeyAccountID), accountID)
}

// GetAccountID returns the authenticated account ID, if the request passed authentication.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(string(KeyAccountID)).(uuid.UUID)

	return accountID, ok && accountID != uuid.Nil
}
