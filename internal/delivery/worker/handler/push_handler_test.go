package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/service"
	mockservice "gatekeeper/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, verify bool) (*PushHandler, *mockservice.MockMailTransport) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Worker.VerifyPushAuth = verify
	transport := mockservice.NewMockMailTransport(t)

	return NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Transport: transport,
	}), transport
}

func pushBody(t *testing.T, event *service.MailEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "ps-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/mail-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testEvent() *service.MailEvent {
	return &service.MailEvent{
		RequestID: "req-from-event",
		MessageID: "msg-1",
		Address:   "a@x.com",
		Subject:   "Verify your email",
		Content:   "https://auth.gatekeeper.test/api/v1/users/verify-email/abc",
	}
}

func TestHandlePush_Delivers(t *testing.T) {
	h, transport := newTestPushHandler(t, false)

	transport.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(event *service.MailEvent) bool {
			return event.MessageID == "msg-1" && event.Address == "a@x.com"
		})).
		RunAndReturn(func(ctx context.Context, _ *service.MailEvent) error {
			assert.Equal(t, "req-from-attr", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-from-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DeliveryOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "transient failure is retried", err: errors.New("dial tcp: connection refused"), code: http.StatusServiceUnavailable},
		{name: "permanent rejection is acknowledged", err: errors.Wrap(service.ErrMailRejected, "550 no such user"), code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, transport := newTestPushHandler(t, false)
			transport.EXPECT().Deliver(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, testEvent(), nil))

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "event not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, false)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_EventWithoutAddressIsDropped(t *testing.T) {
	h, _ := newTestPushHandler(t, false)
	event := testEvent()
	event.Address = " "

	rec := servePush(h, pushBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_VerifiesPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		validErr error
		code     int
	}{
		{name: "missing header", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "invalid signature", header: "Bearer tok", validErr: errors.New("bad signature"), code: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "https://evil.test"}, code: http.StatusUnauthorized},
		{name: "unverified email", header: "Bearer tok", payload: &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email_verified": false},
		}, code: http.StatusUnauthorized},
		{name: "valid", header: "Bearer tok", payload: &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email_verified": true},
		}, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, transport := newTestPushHandler(t, true)
			var gotAudience string
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "tok", token)
				gotAudience = audience

				return tt.payload, tt.validErr
			}
			if tt.code == http.StatusOK {
				transport.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil)
			}

			rec := servePush(h, pushBody(t, testEvent(), nil), func(req *http.Request) {
				if tt.header != "" {
					req.Header.Set(echo.HeaderAuthorization, tt.header)
				}
			})

			assert.Equal(t, tt.code, rec.Code)
			if tt.header == "Bearer tok" {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestHandlePush_ConfiguredAudience(t *testing.T) {
	h, transport := newTestPushHandler(t, true)
	h.pushAudience = "https://mailworker.gatekeeper.test/push"
	h.validateToken = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "https://mailworker.gatekeeper.test/push", audience)

		return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
	}
	transport.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil)

	rec := servePush(h, pushBody(t, testEvent(), nil), func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
