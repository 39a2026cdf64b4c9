package whatsapp

// Channel limits for interactive button messages.
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/messages/interactive-reply-buttons-messages
const (
	MaxButtons           = 3
	MaxButtonTitleLength = 20
)

const truncationMarker = ".."

// TruncateLabel shortens text to at most limit characters. Text that is too
// long keeps its first limit-2 characters followed by "..", so the result is
// exactly limit characters. Characters are Unicode code points.
func TruncateLabel(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= len(truncationMarker) {
		return string(runes[:max(limit, 0)])
	}
	return string(runes[:limit-len(truncationMarker)]) + truncationMarker
}

// TruncateButtonTitle applies the channel's button title limit.
func TruncateButtonTitle(text string) string {
	return TruncateLabel(text, MaxButtonTitleLength)
}
