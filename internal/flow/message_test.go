package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lojasmm/wabridge/internal/richtext"
)

func TestMessageRichText(t *testing.T) {
	nodes := []richtext.Node{{Type: richtext.TypeParagraph, Children: []richtext.Node{{Text: "Hi"}}}}

	var nilMsg *Message
	_, ok := nilMsg.RichText()
	assert.False(t, ok)

	text := &Message{Type: BubbleText, Content: MessageContent{Type: ContentRichText, RichText: nodes}}
	got, ok := text.RichText()
	assert.True(t, ok)
	assert.Equal(t, nodes, got)

	markdown := &Message{Type: BubbleText, Content: MessageContent{Type: ContentMarkdown, Markdown: "Hi"}}
	_, ok = markdown.RichText()
	assert.False(t, ok)

	image := &Message{Type: BubbleImage, Content: MessageContent{Type: ContentRichText, RichText: nodes}}
	_, ok = image.RichText()
	assert.False(t, ok)
}

func TestNewBot(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	bot := NewBot("ws1", "Support", now)

	assert.NotEmpty(t, bot.ID)
	assert.Equal(t, "ws1", bot.WorkspaceID)
	assert.Equal(t, "Support", bot.Name)
	assert.Empty(t, bot.Groups)
	assert.NotNil(t, bot.Groups)
	if assert.Len(t, bot.Events, 1) {
		assert.Equal(t, EventStart, bot.Events[0].Type)
	}
	assert.Equal(t, now, bot.CreatedAt)

	assert.NotEqual(t, bot.ID, NewBot("ws1", "Support", now).ID)
}
