package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lojasmm/wabridge/internal/flow"
	"github.com/lojasmm/wabridge/internal/outbox"
	"github.com/lojasmm/wabridge/internal/store"
	"github.com/lojasmm/wabridge/internal/whatsapp"
)

var ErrNoInput = errors.New("prompt has no input")

// Sender delivers one WhatsApp message.
type Sender interface {
	Send(ctx context.Context, to string, msg whatsapp.SendingMessage) error
}

// Prompt is a pending flow input together with what the user saw before it.
type Prompt struct {
	Input          flow.InputRequest    `json:"input"`
	LastMessage    *flow.Message        `json:"lastMessage,omitempty"`
	SystemMessages *flow.SystemMessages `json:"systemMessages,omitempty"`
}

type Handler struct {
	converter *whatsapp.Converter
	sender    Sender
	store     store.Store
	outbox    *outbox.Sequencer
	logger    *slog.Logger
}

func NewHandler(c *whatsapp.Converter, sender Sender, s store.Store, seq *outbox.Sequencer, logger *slog.Logger) *Handler {
	return &Handler{converter: c, sender: sender, store: s, outbox: seq, logger: logger}
}

// Render converts a prompt into the messages that would be sent for it.
func (h *Handler) Render(p Prompt) []whatsapp.SendingMessage {
	if p.Input.Input == nil {
		return nil
	}
	return h.converter.Convert(p.Input.Input, p.LastMessage, p.SystemMessages)
}

// Deliver renders p and sends the messages to phone in order. Deliveries to
// the same phone never interleave. It stops at the first failed message and
// returns how many were sent before it.
func (h *Handler) Deliver(ctx context.Context, phone string, p Prompt) (int, error) {
	if p.Input.Input == nil {
		return 0, ErrNoInput
	}
	msgs := h.Render(p)
	sent := 0
	err := h.outbox.Do(ctx, phone, func(ctx context.Context) error {
		for i, msg := range msgs {
			if err := h.sender.Send(ctx, phone, msg); err != nil {
				return fmt.Errorf("message %d/%d (%s): %w", i+1, len(msgs), msg.Type, err)
			}
			sent++
		}
		return nil
	})
	if err != nil {
		h.logger.Error("bot: delivery failed", "phone", phone, "sent", sent, "error", err)
		return sent, err
	}

	h.logger.Info("bot: prompt delivered", "phone", phone, "input", p.Input.Input.Kind(), "messages", sent)
	return sent, nil
}

// HandleReply records an inbound reply as the phone's latest answer. Button
// taps keep the tapped label; typed text is coerced to a typed value.
func (h *Handler) HandleReply(r whatsapp.Reply) {
	reply := store.Reply{
		Phone:      r.From,
		MessageID:  r.MessageID,
		Text:       r.Text,
		ButtonID:   r.ButtonID,
		Value:      flow.ParseGuessedValue(r.Text),
		ReceivedAt: r.ReceivedAt,
	}
	if r.ButtonID != "" {
		reply.Value = r.Text
	}

	if err := h.store.SaveReply(reply); err != nil {
		h.logger.Error("bot: failed to save reply", "phone", r.From, "message_id", r.MessageID, "error", err)
		return
	}
	h.logger.Debug("bot: reply recorded", "phone", r.From, "message_id", r.MessageID)
}

// LastReply returns the latest recorded reply of phone.
func (h *Handler) LastReply(phone string) (*store.Reply, error) {
	return h.store.LastReply(phone)
}
