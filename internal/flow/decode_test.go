package flow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInputChoice(t *testing.T) {
	raw := `{
	  "id": "block1",
	  "type": "choice input",
	  "items": [{"id": "a", "content": "Yes"}, {"id": "b"}],
	  "options": {"isMultipleChoice": true}
	}`

	in, err := DecodeInput([]byte(raw))
	require.NoError(t, err)

	choice, ok := in.(ChoiceInput)
	require.True(t, ok, "got %T", in)
	assert.Equal(t, "block1", choice.ID)
	require.Len(t, choice.Items, 2)
	require.NotNil(t, choice.Items[0].Content)
	assert.Equal(t, "Yes", *choice.Items[0].Content)
	assert.Nil(t, choice.Items[1].Content)
	assert.True(t, choice.Options.Resolve().IsMultipleChoice)
}

func TestDecodeInputCards(t *testing.T) {
	raw := `{
	  "type": "cards",
	  "items": [{"id": "c1", "imageUrl": "https://img", "title": "T",
	    "paths": [{"id": "p1", "text": "Go"}, {"id": "p2"}]}]
	}`

	in, err := DecodeInput([]byte(raw))
	require.NoError(t, err)

	cards, ok := in.(CardsInput)
	require.True(t, ok)
	require.Len(t, cards.Items, 1)
	assert.Equal(t, "https://img", cards.Items[0].ImageURL)
	assert.Equal(t, []CardPath{{ID: "p1", Text: "Go"}, {ID: "p2"}}, cards.Items[0].Paths)
}

func TestDecodeInputEveryKind(t *testing.T) {
	kinds := []InputKind{
		KindText, KindNumber, KindEmail, KindURL, KindDate, KindTime, KindPhone,
		KindChoice, KindPictureChoice, KindPayment, KindRating, KindFile, KindCards,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			raw, err := json.Marshal(map[string]any{"type": kind, "id": "x"})
			require.NoError(t, err)

			in, err := DecodeInput(raw)
			require.NoError(t, err)
			assert.Equal(t, kind, in.Kind())
		})
	}
}

func TestDecodeInputErrors(t *testing.T) {
	_, err := DecodeInput([]byte(`{"type":"hologram input"}`))
	assert.ErrorIs(t, err, ErrUnknownInputKind)

	_, err = DecodeInput([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeInput([]byte(`{"type":"choice input","items":"oops"}`))
	assert.Error(t, err)
}

func TestInputRequestJSON(t *testing.T) {
	yes := "Yes"
	req := InputRequest{Input: ChoiceInput{ID: "b", Items: []ChoiceItem{{ID: "a", Content: &yes}}}}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"choice input"`)

	var decoded InputRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req.Input, decoded.Input)
}
