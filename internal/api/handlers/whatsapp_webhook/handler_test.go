package whatsapp_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
)

type fakeConversation struct {
	received []*whatsapp.IncomingMessage
	err      error
}

func (f *fakeConversation) HandleMessage(ctx context.Context, msg *whatsapp.IncomingMessage) error {
	f.received = append(f.received, msg)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const textPayload = `{
	"entry": [{
		"changes": [{
			"value": {
				"messages": [{
					"from": "919900000001",
					"id": "wamid.test",
					"type": "text",
					"text": {"body": "hi"}
				}]
			}
		}]
	}]
}`

const statusPayload = `{
	"entry": [{
		"changes": [{
			"value": {
				"statuses": [{"id": "wamid.test", "status": "delivered"}]
			}
		}]
	}]
}`

func TestHandleVerify(t *testing.T) {
	h := NewHandler(&fakeConversation{}, "secret-token", nopLogger{})

	t.Run("valid token echoes challenge", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/whatsapp/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
		rec := httptest.NewRecorder()

		h.HandleVerify(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "12345", rec.Body.String())
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/whatsapp/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
		rec := httptest.NewRecorder()

		h.HandleVerify(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("wrong mode rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/whatsapp/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token", nil)
		rec := httptest.NewRecorder()

		h.HandleVerify(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleMessage(t *testing.T) {
	t.Run("text message dispatched and acked", func(t *testing.T) {
		conv := &fakeConversation{}
		h := NewHandler(conv, "secret-token", nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/whatsapp/webhook", strings.NewReader(textPayload))
		rec := httptest.NewRecorder()

		h.HandleMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, conv.received, 1)
		assert.Equal(t, "919900000001", conv.received[0].From)
		assert.Equal(t, "hi", conv.received[0].Text)
	})

	t.Run("status notification acked without dispatch", func(t *testing.T) {
		conv := &fakeConversation{}
		h := NewHandler(conv, "secret-token", nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/whatsapp/webhook", strings.NewReader(statusPayload))
		rec := httptest.NewRecorder()

		h.HandleMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, conv.received)
	})

	t.Run("malformed payload still acked", func(t *testing.T) {
		conv := &fakeConversation{}
		h := NewHandler(conv, "secret-token", nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/whatsapp/webhook", strings.NewReader("not json"))
		rec := httptest.NewRecorder()

		h.HandleMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, conv.received)
	})

	t.Run("conversation error still acked", func(t *testing.T) {
		conv := &fakeConversation{err: errors.New("redis down")}
		h := NewHandler(conv, "secret-token", nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/whatsapp/webhook", strings.NewReader(textPayload))
		rec := httptest.NewRecorder()

		h.HandleMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
