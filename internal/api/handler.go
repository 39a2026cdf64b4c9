package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lojasmm/wabridge/internal/bot"
	"github.com/lojasmm/wabridge/internal/flow"
	"github.com/lojasmm/wabridge/internal/store"
	"github.com/lojasmm/wabridge/internal/whatsapp"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	store  store.Store
	bot    *bot.Handler
	logger *slog.Logger
	now    func() time.Time
}

func NewHandler(s store.Store, b *bot.Handler, logger *slog.Logger) *Handler {
	return &Handler{store: s, bot: b, logger: logger, now: time.Now}
}

// ListBots handles GET /api/bots?workspaceId=W&ids=a&ids=b.
func (h *Handler) ListBots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workspaceID := q.Get("workspaceId")
	if workspaceID == "" {
		writeError(w, http.StatusBadRequest, "workspaceId is required")
		return
	}

	bots, err := h.store.ListBots(workspaceID, q["ids"])
	if err != nil {
		h.internalError(w, "listing bots", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bots": bots})
}

// createBotRequest is a new bot. Groups, events and variables are optional;
// without groups the bot starts from an empty flow with a start event.
// Unknown fields of older exports are ignored.
type createBotRequest struct {
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name"`
	Groups      []flow.Group    `json:"groups"`
	Events      []flow.Event    `json:"events"`
	Variables   []flow.Variable `json:"variables"`
}

// CreateBot handles POST /api/bots.
func (h *Handler) CreateBot(w http.ResponseWriter, r *http.Request) {
	var req createBotRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.WorkspaceID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "workspaceId and name are required")
		return
	}

	b := flow.NewBot(req.WorkspaceID, req.Name, h.now().UTC())
	if req.Groups != nil {
		b.Groups = req.Groups
		if req.Events != nil {
			b.Events = req.Events
		}
	}
	if req.Variables != nil {
		b.Variables = req.Variables
	}

	if err := h.store.CreateBot(b); err != nil {
		h.internalError(w, "creating bot", err)
		return
	}
	h.logger.Info("api: bot created", "bot_id", b.ID, "workspace_id", b.WorkspaceID)
	writeJSON(w, http.StatusOK, b)
}

// Preview handles POST /api/whatsapp/preview: it renders a prompt without
// sending anything.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var p bot.Prompt
	if !h.decodePrompt(w, r, &p) {
		return
	}
	msgs := h.bot.Render(p)
	if msgs == nil {
		msgs = []whatsapp.SendingMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// Send handles POST /api/whatsapp/{phone}/send.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")
	var p bot.Prompt
	if !h.decodePrompt(w, r, &p) {
		return
	}

	sent, err := h.bot.Deliver(r.Context(), phone, p)
	if err != nil {
		status := http.StatusBadGateway
		if r.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]any{"message": err.Error(), "sent": sent})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sent": sent})
}

// LastReply handles GET /api/whatsapp/{phone}/reply.
func (h *Handler) LastReply(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")
	reply, err := h.bot.LastReply(phone)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no reply recorded for "+phone)
	case err != nil:
		h.internalError(w, "loading reply", err)
	default:
		writeJSON(w, http.StatusOK, reply)
	}
}

func (h *Handler) decodePrompt(w http.ResponseWriter, r *http.Request, p *bot.Prompt) bool {
	if !h.decode(w, r, p) {
		return false
	}
	if p.Input.Input == nil {
		writeError(w, http.StatusBadRequest, "input is required")
		return false
	}
	return true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("api: "+op, "error", err)
	writeError(w, http.StatusInternalServerError, "An error occurred")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
