package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestScope_TagsLoggerWithRequestID(t *testing.T) {
	var buf bytes.Buffer

	ctx, logger := Scope(context.Background(), newBufferLogger(&buf), "req-7")

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c echo.Context)
		want  string
	}{
		{name: "nothing set", setup: func(echo.Context) {}, want: ""},
		{name: "echo value", setup: func(c echo.Context) { SetRequestID(c, "from-echo") }, want: "from-echo"},
		{
			name: "request context",
			setup: func(c echo.Context) {
				c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
			},
			want: "from-ctx",
		},
		{
			name: "echo value wins",
			setup: func(c echo.Context) {
				c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
				SetRequestID(c, "from-echo")
			},
			want: "from-echo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			tt.setup(c)

			assert.Equal(t, tt.want, GetRequestID(c))
		})
	}
}

func TestGetLoggerOrDefault_FallsBack(t *testing.T) {
	fallback := slog.Default()

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestWithAccountLogger(t *testing.T) {
	t.Run("extends the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx, _ := Scope(context.Background(), newBufferLogger(&buf), "req-9")

		ctx = WithAccountLogger(ctx, nil, "acc-1")
		GetLogger(ctx).Info("hello")

		assert.Contains(t, buf.String(), `"request_id":"req-9"`)
		assert.Contains(t, buf.String(), `"account_id":"acc-1"`)
	})

	t.Run("uses the fallback without a request logger", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithAccountLogger(context.Background(), newBufferLogger(&buf), "acc-2")
		require.NotNil(t, GetLogger(ctx))
		GetLogger(ctx).Info("hello")

		assert.Contains(t, buf.String(), `"account_id":"acc-2"`)
	})

	t.Run("leaves the context alone with no logger at all", func(t *testing.T) {
		ctx := WithAccountLogger(context.Background(), nil, "acc-3")

		assert.Nil(t, GetLogger(ctx))
	})
}
