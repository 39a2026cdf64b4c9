package flow

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownInputKind = errors.New("unknown input kind")

// InputRequest wraps an Input so it can be decoded from the engine's
// type-tagged JSON.
type InputRequest struct {
	Input Input
}

func (r *InputRequest) UnmarshalJSON(data []byte) error {
	in, err := DecodeInput(data)
	if err != nil {
		return err
	}
	r.Input = in
	return nil
}

func (r InputRequest) MarshalJSON() ([]byte, error) {
	if r.Input == nil {
		return []byte("null"), nil
	}
	body, err := json.Marshal(r.Input)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(r.Input.Kind())
	fields["type"] = kind
	return json.Marshal(fields)
}

// DecodeInput reads the "type" field of data and decodes the rest into the
// matching Input.
func DecodeInput(data []byte) (Input, error) {
	var head struct {
		Type InputKind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decoding input type: %w", err)
	}

	switch head.Type {
	case KindText:
		return decodeAs[TextInput](data)
	case KindNumber:
		return decodeAs[NumberInput](data)
	case KindEmail:
		return decodeAs[EmailInput](data)
	case KindURL:
		return decodeAs[URLInput](data)
	case KindDate:
		return decodeAs[DateInput](data)
	case KindTime:
		return decodeAs[TimeInput](data)
	case KindPhone:
		return decodeAs[PhoneInput](data)
	case KindChoice:
		return decodeAs[ChoiceInput](data)
	case KindPictureChoice:
		return decodeAs[PictureChoiceInput](data)
	case KindPayment:
		return decodeAs[PaymentInput](data)
	case KindRating:
		return decodeAs[RatingInput](data)
	case KindFile:
		return decodeAs[FileInput](data)
	case KindCards:
		return decodeAs[CardsInput](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInputKind, head.Type)
	}
}

func decodeAs[T Input](data []byte) (Input, error) {
	var in T
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", in.Kind(), err)
	}
	return in, nil
}
