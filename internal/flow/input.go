// Package flow holds the data shapes produced by the chatbot flow engine:
// pending inputs, the bubbles shown before them, system message overrides
// and bot definitions.
package flow

// InputKind tags the kind of answer a flow is waiting for.
type InputKind string

const (
	KindText          InputKind = "text input"
	KindNumber        InputKind = "number input"
	KindEmail         InputKind = "email input"
	KindURL           InputKind = "url input"
	KindDate          InputKind = "date input"
	KindTime          InputKind = "time input"
	KindPhone         InputKind = "phone number input"
	KindChoice        InputKind = "choice input"
	KindPictureChoice InputKind = "picture choice input"
	KindPayment       InputKind = "payment input"
	KindRating        InputKind = "rating input"
	KindFile          InputKind = "file input"
	KindCards         InputKind = "cards"
)

// Input is the closed set of pending inputs. Only types in this package
// implement it; callers dispatch on it through InputVisitor.
type Input interface {
	Kind() InputKind
	Accept(v InputVisitor)
	isInput()
}

// InputVisitor has one method per input kind. Adding a kind adds a method
// here, which breaks every visitor until it handles the new kind.
type InputVisitor interface {
	VisitText(TextInput)
	VisitNumber(NumberInput)
	VisitEmail(EmailInput)
	VisitURL(URLInput)
	VisitDate(DateInput)
	VisitTime(TimeInput)
	VisitPhone(PhoneInput)
	VisitChoice(ChoiceInput)
	VisitPictureChoice(PictureChoiceInput)
	VisitPayment(PaymentInput)
	VisitRating(RatingInput)
	VisitFile(FileInput)
	VisitCards(CardsInput)
}

type TextInput struct {
	ID string `json:"id"`
}

type NumberInput struct {
	ID string `json:"id"`
}

type EmailInput struct {
	ID string `json:"id"`
}

type URLInput struct {
	ID string `json:"id"`
}

type DateInput struct {
	ID string `json:"id"`
}

type TimeInput struct {
	ID string `json:"id"`
}

type PhoneInput struct {
	ID string `json:"id"`
}

type PaymentInput struct {
	ID string `json:"id"`
}

type RatingInput struct {
	ID string `json:"id"`
}

type FileInput struct {
	ID string `json:"id"`
}

// ChoiceInput asks the user to pick one or several text buttons.
type ChoiceInput struct {
	ID      string         `json:"id"`
	Items   []ChoiceItem   `json:"items"`
	Options *ChoiceOptions `json:"options,omitempty"`
}

// ChoiceItem is a button. Content is nil when the editor left it undefined,
// which is distinct from an empty label.
type ChoiceItem struct {
	ID      string  `json:"id"`
	Content *string `json:"content,omitempty"`
}

// PictureChoiceInput asks the user to pick among illustrated items.
type PictureChoiceInput struct {
	ID      string                `json:"id"`
	Items   []PictureChoiceItem   `json:"items"`
	Options *PictureChoiceOptions `json:"options,omitempty"`
}

type PictureChoiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	PictureSrc  string `json:"pictureSrc,omitempty"`
}

// CardsInput shows a carousel of cards, each with its own outgoing paths.
type CardsInput struct {
	ID    string `json:"id"`
	Items []Card `json:"items"`
}

type Card struct {
	ID          string     `json:"id"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Paths       []CardPath `json:"paths,omitempty"`
}

type CardPath struct {
	ID   string `json:"id"`
	Text string `json:"text,omitempty"`
}

func (TextInput) Kind() InputKind          { return KindText }
func (NumberInput) Kind() InputKind        { return KindNumber }
func (EmailInput) Kind() InputKind         { return KindEmail }
func (URLInput) Kind() InputKind           { return KindURL }
func (DateInput) Kind() InputKind          { return KindDate }
func (TimeInput) Kind() InputKind          { return KindTime }
func (PhoneInput) Kind() InputKind         { return KindPhone }
func (ChoiceInput) Kind() InputKind        { return KindChoice }
func (PictureChoiceInput) Kind() InputKind { return KindPictureChoice }
func (PaymentInput) Kind() InputKind       { return KindPayment }
func (RatingInput) Kind() InputKind        { return KindRating }
func (FileInput) Kind() InputKind          { return KindFile }
func (CardsInput) Kind() InputKind         { return KindCards }

func (in TextInput) Accept(v InputVisitor)          { v.VisitText(in) }
func (in NumberInput) Accept(v InputVisitor)        { v.VisitNumber(in) }
func (in EmailInput) Accept(v InputVisitor)         { v.VisitEmail(in) }
func (in URLInput) Accept(v InputVisitor)           { v.VisitURL(in) }
func (in DateInput) Accept(v InputVisitor)          { v.VisitDate(in) }
func (in TimeInput) Accept(v InputVisitor)          { v.VisitTime(in) }
func (in PhoneInput) Accept(v InputVisitor)         { v.VisitPhone(in) }
func (in ChoiceInput) Accept(v InputVisitor)        { v.VisitChoice(in) }
func (in PictureChoiceInput) Accept(v InputVisitor) { v.VisitPictureChoice(in) }
func (in PaymentInput) Accept(v InputVisitor)       { v.VisitPayment(in) }
func (in RatingInput) Accept(v InputVisitor)        { v.VisitRating(in) }
func (in FileInput) Accept(v InputVisitor)          { v.VisitFile(in) }
func (in CardsInput) Accept(v InputVisitor)         { v.VisitCards(in) }

func (TextInput) isInput()          {}
func (NumberInput) isInput()        {}
func (EmailInput) isInput()         {}
func (URLInput) isInput()           {}
func (DateInput) isInput()          {}
func (TimeInput) isInput()          {}
func (PhoneInput) isInput()         {}
func (ChoiceInput) isInput()        {}
func (PictureChoiceInput) isInput() {}
func (PaymentInput) isInput()       {}
func (RatingInput) isInput()        {}
func (FileInput) isInput()          {}
func (CardsInput) isInput()         {}
