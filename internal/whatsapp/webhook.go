package whatsapp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// Reply is an inbound user answer: free text or a tap on a reply button.
type Reply struct {
	From       string
	MessageID  string
	Text       string
	ButtonID   string
	ReceivedAt time.Time
}

// ReplyHandler is called for each inbound reply, in payload order.
type ReplyHandler func(Reply)

type WebhookHandler struct {
	verifyToken string
	onReply     ReplyHandler
	logger      *slog.Logger
}

func NewWebhookHandler(verifyToken string, onReply ReplyHandler, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		verifyToken: verifyToken,
		onReply:     onReply,
		logger:      logger,
	}
}

// HandleVerify handles the GET webhook verification from Meta.
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/get-started#webhook-verification
func (h *WebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// HandleIncoming processes incoming webhook POST notifications. Meta retries
// anything but 200, so malformed payloads are logged and acknowledged.
func (h *WebhookHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("webhook: failed to decode payload", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				reply, ok := toReply(msg)
				if !ok {
					h.logger.Debug("webhook: ignoring message", "type", msg.Type, "message_id", msg.ID)
					continue
				}
				h.onReply(reply)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}

func toReply(msg Message) (Reply, bool) {
	reply := Reply{
		From:       msg.From,
		MessageID:  msg.ID,
		ReceivedAt: parseTimestamp(msg.Timestamp),
	}

	switch msg.Type {
	case "text":
		if msg.Text == nil {
			return Reply{}, false
		}
		reply.Text = msg.Text.Body
	case "interactive":
		if msg.Interactive == nil || msg.Interactive.Type != "button_reply" || msg.Interactive.ButtonReply == nil {
			return Reply{}, false
		}
		reply.Text = msg.Interactive.ButtonReply.Title
		reply.ButtonID = msg.Interactive.ButtonReply.ID
	default:
		return Reply{}, false
	}
	return reply, true
}

// parseTimestamp reads Meta's unix-seconds string, falling back to now.
func parseTimestamp(s string) time.Time {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Unix(sec, 0).UTC()
}
