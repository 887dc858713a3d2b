// Package context carries request-scoped values between the HTTP layer and the use cases.
//
// Handlers and response envelopes read them from echo.Context. Use cases, the
// mail publisher and the query logger read them from context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey names values stored on echo.Context.
type ContextKey string

// KeyRequestID is the echo.Context key for the request ID.
const KeyRequestID ContextKey = "request_id"

// HeaderXRequestID carries the request ID in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// Scope returns ctx carrying requestID and a child of base tagged with it.
// The child logger is returned as well for the caller's own logging.
func Scope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// SetRequestID stores the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the ID stored on c, falling back to the one on its request context.
// It is empty for requests that never passed the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithAccountLogger tags the request-scoped logger, or fallback, with the authenticated account.
func WithAccountLogger(ctx context.Context, fallback *slog.Logger, accountID string) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(slog.String("account_id", accountID)))
}
