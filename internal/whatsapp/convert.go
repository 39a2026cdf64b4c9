package whatsapp

import (
	"strconv"
	"strings"

	"github.com/lojasmm/wabridge/internal/batch"
	"github.com/lojasmm/wabridge/internal/flow"
	"github.com/lojasmm/wabridge/internal/richtext"
)

// DefaultGroupSize is the number of choice buttons packed into one message
// when no size is configured.
const DefaultGroupSize = MaxButtons

// placeholderBody stands in for a question text when there is none; button
// messages need a body.
const placeholderBody = "..."

// Converter renders pending flow inputs as WhatsApp messages. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	groupSize int
}

// NewConverter returns a Converter packing single-select choices into
// messages of groupSize buttons. Sizes outside 1..MaxButtons are clamped:
// non-positive falls back to DefaultGroupSize.
func NewConverter(groupSize int) *Converter {
	switch {
	case groupSize <= 0:
		groupSize = DefaultGroupSize
	case groupSize > MaxButtons:
		groupSize = MaxButtons
	}
	return &Converter{groupSize: groupSize}
}

// GroupSize reports the effective number of buttons per choice message.
func (c *Converter) GroupSize() int { return c.groupSize }

// Convert renders in as zero or more messages, in send order. last is the
// bubble shown right before the input; when it is a rich-text bubble its
// text is repeated as the question of choice messages. sys may be nil.
// Inputs that the channel's plain reply already covers produce no messages.
func (c *Converter) Convert(in flow.Input, last *flow.Message, sys *flow.SystemMessages) []SendingMessage {
	cv := &conversion{
		groupSize: c.groupSize,
		system:    sys.Resolve(),
	}
	if nodes, ok := last.RichText(); ok {
		cv.question = richtext.Render(nodes, richtext.FlavorWhatsApp)
	}
	in.Accept(cv)
	return cv.out
}

// conversion is the per-call visitor collecting output messages.
type conversion struct {
	groupSize int
	system    flow.SystemMessageConfig
	question  string
	out       []SendingMessage
}

var _ flow.InputVisitor = (*conversion)(nil)

func (cv *conversion) VisitText(flow.TextInput)       {}
func (cv *conversion) VisitNumber(flow.NumberInput)   {}
func (cv *conversion) VisitEmail(flow.EmailInput)     {}
func (cv *conversion) VisitURL(flow.URLInput)         {}
func (cv *conversion) VisitDate(flow.DateInput)       {}
func (cv *conversion) VisitTime(flow.TimeInput)       {}
func (cv *conversion) VisitPhone(flow.PhoneInput)     {}
func (cv *conversion) VisitPayment(flow.PaymentInput) {}
func (cv *conversion) VisitRating(flow.RatingInput)   {}
func (cv *conversion) VisitFile(flow.FileInput)       {}

func (cv *conversion) VisitChoice(in flow.ChoiceInput) {
	if in.Options.Resolve().IsMultipleChoice {
		cv.out = append(cv.out, newTextMessage(cv.numberedChoices(in.Items)))
		return
	}

	defined := make([]flow.ChoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Content != nil {
			defined = append(defined, item)
		}
	}

	for i, group := range batch.Group(defined, cv.groupSize) {
		body := placeholderBody
		if i == 0 && cv.question != "" {
			body = cv.question
		}
		buttons := make([]Button, len(group))
		for j, item := range group {
			buttons[j] = replyButton(item.ID, TruncateButtonTitle(*item.Content))
		}
		cv.out = append(cv.out, newButtonMessage("", body, buttons))
	}
}

// numberedChoices lists every item, undefined contents included, under the
// question text.
func (cv *conversion) numberedChoices(items []flow.ChoiceItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		var content string
		if item.Content != nil {
			content = *item.Content
		}
		lines[i] = strconv.Itoa(i+1) + ". " + content
	}
	list := strings.Join(lines, "\n")
	if cv.question == "" {
		return list
	}
	return cv.question + "\n\n" + list
}

func (cv *conversion) VisitPictureChoice(in flow.PictureChoiceInput) {
	if in.Options.Resolve().IsMultipleChoice {
		for i, item := range in.Items {
			if item.PictureSrc != "" {
				cv.out = append(cv.out, newImageMessage(item.PictureSrc))
			}
			body := strconv.Itoa(i+1) + ". " + titleAndDescription(item.Title, item.Description)
			cv.out = append(cv.out, newTextMessage(body))
		}
		return
	}

	label := TruncateButtonTitle(cv.system.WhatsAppPictureChoiceSelectLabel)
	for _, item := range in.Items {
		cv.out = append(cv.out, newButtonMessage(
			item.PictureSrc,
			titleAndDescription(item.Title, item.Description),
			[]Button{replyButton(item.ID, label)},
		))
	}
}

func (cv *conversion) VisitCards(in flow.CardsInput) {
	for _, card := range in.Items {
		paths := card.Paths[:min(len(card.Paths), MaxButtons)]
		buttons := make([]Button, len(paths))
		for i, path := range paths {
			buttons[i] = replyButton(path.ID, TruncateButtonTitle(path.Text))
		}
		cv.out = append(cv.out, newButtonMessage(
			card.ImageURL,
			titleAndDescription(card.Title, card.Description),
			buttons,
		))
	}
}

// titleAndDescription bolds the title and puts the description after a
// blank line. Either part may be empty.
func titleAndDescription(title, description string) string {
	switch {
	case title != "" && description != "":
		return "*" + title + "*\n\n" + description
	case title != "":
		return "*" + title + "*"
	default:
		return description
	}
}
