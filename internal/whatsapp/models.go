package whatsapp

// --- Incoming webhook payload ---
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components

type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Value ChangeValue `json:"value"`
	Field string      `json:"field"`
}

type ChangeValue struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts"`
	Messages         []Message `json:"messages"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	Profile Profile `json:"profile"`
	WaID    string  `json:"wa_id"`
}

type Profile struct {
	Name string `json:"name"`
}

type Message struct {
	From        string              `json:"from"`
	ID          string              `json:"id"`
	Timestamp   string              `json:"timestamp"`
	Type        string              `json:"type"`
	Text        *TextContent        `json:"text,omitempty"`
	Interactive *InteractiveContent `json:"interactive,omitempty"`
}

// InteractiveContent is a user's tap on one of our reply buttons.
type InteractiveContent struct {
	Type        string       `json:"type"`
	ButtonReply *ButtonReply `json:"button_reply,omitempty"`
}

type TextContent struct {
	Body string `json:"body"`
}

// --- Outgoing messages ---
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/messages

type MessageType string

const (
	TypeText        MessageType = "text"
	TypeImage       MessageType = "image"
	TypeInteractive MessageType = "interactive"
)

// SendingMessage is the addressable-free body of one outgoing message.
// Exactly one of Text, Image or Interactive is set, matching Type.
type SendingMessage struct {
	Type        MessageType  `json:"type"`
	Text        *SendText    `json:"text,omitempty"`
	Image       *Media       `json:"image,omitempty"`
	Interactive *Interactive `json:"interactive,omitempty"`
}

// SendMessageRequest is the full Cloud API request body.
type SendMessageRequest struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	SendingMessage
}

type SendText struct {
	PreviewURL bool   `json:"preview_url,omitempty"`
	Body       string `json:"body"`
}

type Media struct {
	Link string `json:"link"`
}

type Interactive struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveBody   `json:"body,omitempty"`
	Action InteractiveAction  `json:"action"`
}

type InteractiveHeader struct {
	Type  string `json:"type"`
	Image *Media `json:"image,omitempty"`
}

type InteractiveBody struct {
	Text string `json:"text"`
}

type InteractiveAction struct {
	Buttons []Button `json:"buttons"`
}

type Button struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTextMessage(body string) SendingMessage {
	return SendingMessage{Type: TypeText, Text: &SendText{Body: body}}
}

func newImageMessage(link string) SendingMessage {
	return SendingMessage{Type: TypeImage, Image: &Media{Link: link}}
}

// newButtonMessage builds an interactive button message. An empty imageURL
// omits the header and an empty body omits the body.
func newButtonMessage(imageURL, body string, buttons []Button) SendingMessage {
	in := &Interactive{
		Type:   "button",
		Action: InteractiveAction{Buttons: buttons},
	}
	if imageURL != "" {
		in.Header = &InteractiveHeader{Type: "image", Image: &Media{Link: imageURL}}
	}
	if body != "" {
		in.Body = &InteractiveBody{Text: body}
	}
	return SendingMessage{Type: TypeInteractive, Interactive: in}
}

func replyButton(id, title string) Button {
	return Button{Type: "reply", Reply: ButtonReply{ID: id, Title: title}}
}
