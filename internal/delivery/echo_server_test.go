package delivery

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	return cfg
}

func TestNewEcho_SharedMiddleware(t *testing.T) {
	e := NewEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/ping", func(c echo.Context) error {
		assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/panic", func(echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, time.Minute, e.Server.IdleTimeout)
}

func TestEchoServer_StopsWithLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewEchoServer(lc, NewEcho(newTestConfig(), logger), EchoServerOptions{Name: "test", Port: 0}, logger)

	assert.NotNil(t, srv)
	lc.RequireStart().RequireStop()
}
