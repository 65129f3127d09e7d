package whatsapp_webhook

import (
	"io"
	"net/http"

	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
)

// Вебхук Meta: GET подтверждает подписку, POST доставляет сообщения.
// POST всегда отвечает 200, иначе Meta начнет ретраить и отключит вебхук.

type Handler struct {
	conversation ConversationService
	verifyToken  string
	logger       Logger
}

func NewHandler(conversation ConversationService, verifyToken string, logger Logger) *Handler {
	return &Handler{
		conversation: conversation,
		verifyToken:  verifyToken,
		logger:       logger,
	}
}

// HandleVerify GET /api/v1/whatsapp/webhook
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode != "subscribe" || token != h.verifyToken {
		h.logger.Warn("GET /whatsapp/webhook - Verification failed: mode=%s", mode)
		w.WriteHeader(http.StatusForbidden)
		return
	}

	h.logger.Info("GET /whatsapp/webhook - Webhook verified")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

// HandleMessage POST /api/v1/whatsapp/webhook
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("POST /whatsapp/webhook - Failed to read body: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	msg, err := whatsapp.ParseWebhook(body)
	if err != nil {
		h.logger.Warn("POST /whatsapp/webhook - Failed to parse payload: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}
	if msg == nil {
		// статусные уведомления (delivered/read) просто подтверждаем
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.conversation.HandleMessage(r.Context(), msg); err != nil {
		h.logger.Error("POST /whatsapp/webhook - Conversation failed: from=%s, error=%v", msg.From, err)
	}

	w.WriteHeader(http.StatusOK)
}
