package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const messagingProduct = "whatsapp"

// Client клиент WhatsApp Cloud API (Meta Graph API)
type Client struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр клиента WhatsApp Cloud API
func NewClient(baseURL, phoneNumberID, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendText отправляет обычное текстовое сообщение
func (c *Client) SendText(ctx context.Context, to, text string) error {
	msg := TextMessage{
		MessagingProduct: messagingProduct,
		To:               to,
		Type:             "text",
		Text:             TextBody{Body: text},
	}
	return c.send(ctx, to, msg)
}

// SendList отправляет интерактивный список (выбор даты, времени, длительности)
func (c *Client) SendList(ctx context.Context, to, header, body, buttonText string, sections []Section) error {
	msg := InteractiveMessage{
		MessagingProduct: messagingProduct,
		To:               to,
		Type:             "interactive",
		Interactive: Interactive{
			Type:   "list",
			Header: &Header{Type: "text", Text: header},
			Body:   TextContent{Text: body},
			Action: Action{
				Button:   buttonText,
				Sections: sections,
			},
		},
	}
	return c.send(ctx, to, msg)
}

// SendButtons отправляет сообщение с кнопками быстрого ответа.
// Cloud API разрешает максимум 3 кнопки, лишние отбрасываются.
func (c *Client) SendButtons(ctx context.Context, to, body string, buttons []ButtonReply) error {
	if len(buttons) > 3 {
		buttons = buttons[:3]
	}

	actionButtons := make([]Button, len(buttons))
	for i, b := range buttons {
		actionButtons[i] = Button{Type: "reply", Reply: b}
	}

	msg := InteractiveMessage{
		MessagingProduct: messagingProduct,
		To:               to,
		Type:             "interactive",
		Interactive: Interactive{
			Type: "button",
			Body: TextContent{Text: body},
			Action: Action{
				Buttons: actionButtons,
			},
		},
	}
	return c.send(ctx, to, msg)
}

func (c *Client) send(ctx context.Context, to string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)

		var apiErr ErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			c.log.Error("WhatsApp API rejected message to %s: code=%d, %s", to, apiErr.Error.Code, apiErr.Error.Message)
			return fmt.Errorf("%w: status=%d, code=%d: %s", ErrSendFailed, resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}

		c.log.Error("WhatsApp API rejected message to %s: status=%d, body=%s", to, resp.StatusCode, string(respBody))
		return fmt.Errorf("%w: unexpected status code %d", ErrSendFailed, resp.StatusCode)
	}

	return nil
}

// ParseWebhook разбирает POST-уведомление вебхука и возвращает первое входящее
// сообщение. Служебные уведомления (статусы доставки и т.п.) возвращают nil -
// это не ошибка, их нужно просто подтвердить.
func ParseWebhook(body []byte) (*IncomingMessage, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return nil, nil
	}
	messages := payload.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return nil, nil
	}

	raw := messages[0]
	msg := &IncomingMessage{
		From:      raw.From,
		MessageID: raw.ID,
	}

	switch raw.Type {
	case "text":
		if raw.Text != nil {
			msg.Text = raw.Text.Body
		}
	case "interactive":
		if raw.Interactive != nil {
			reply := raw.Interactive.ButtonReply
			if reply == nil {
				reply = raw.Interactive.ListReply
			}
			if reply != nil {
				msg.ReplyID = reply.ID
				msg.ReplyTitle = reply.Title
			}
		}
	}

	return msg, nil
}
