package flow

import "github.com/lojasmm/wabridge/internal/richtext"

// BubbleType tags a bubble shown to the user.
type BubbleType string

const (
	BubbleText  BubbleType = "text"
	BubbleImage BubbleType = "image"
	BubbleVideo BubbleType = "video"
	BubbleAudio BubbleType = "audio"
	BubbleEmbed BubbleType = "embed"
)

// Content types of a text bubble.
const (
	ContentRichText = "richText"
	ContentMarkdown = "markdown"
)

// Message is a bubble the flow engine displayed.
type Message struct {
	ID      string         `json:"id"`
	Type    BubbleType     `json:"type"`
	Content MessageContent `json:"content"`
}

type MessageContent struct {
	Type     string          `json:"type,omitempty"`
	RichText []richtext.Node `json:"richText,omitempty"`
	Markdown string          `json:"markdown,omitempty"`
	URL      string          `json:"url,omitempty"`
}

// RichText returns the rich-text nodes of a text bubble. ok is false for a
// nil message, non-text bubbles and text bubbles not stored as rich text.
func (m *Message) RichText() (nodes []richtext.Node, ok bool) {
	if m == nil || m.Type != BubbleText || m.Content.Type != ContentRichText {
		return nil, false
	}
	return m.Content.RichText, true
}
