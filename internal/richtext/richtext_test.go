package richtext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paragraph(children ...Node) Node {
	return Node{Type: TypeParagraph, Children: children}
}

func TestRenderParagraphs(t *testing.T) {
	nodes := []Node{
		paragraph(Node{Text: "Hello "}, Node{Text: "world", Bold: true}),
		paragraph(Node{Text: "How are you?"}),
	}

	assert.Equal(t, "Hello *world*\nHow are you?", Render(nodes, FlavorWhatsApp))
	assert.Equal(t, "Hello **world**\nHow are you?", Render(nodes, FlavorCommon))
}

func TestRenderMarks(t *testing.T) {
	tests := []struct {
		name   string
		leaf   Node
		flavor Flavor
		want   string
	}{
		{"italic whatsapp", Node{Text: "soft", Italic: true}, FlavorWhatsApp, "_soft_"},
		{"strike whatsapp", Node{Text: "gone", Strikethrough: true}, FlavorWhatsApp, "~gone~"},
		{"strike common", Node{Text: "gone", Strikethrough: true}, FlavorCommon, "~~gone~~"},
		{"code whatsapp", Node{Text: "x := 1", Code: true}, FlavorWhatsApp, "```x := 1```"},
		{"code common", Node{Text: "x := 1", Code: true}, FlavorCommon, "`x := 1`"},
		{"bold italic", Node{Text: "both", Bold: true, Italic: true}, FlavorWhatsApp, "*_both_*"},
		{"underline dropped", Node{Text: "under", Underline: true}, FlavorWhatsApp, "under"},
		{"spaces kept outside", Node{Text: "  pad ", Bold: true}, FlavorWhatsApp, "  *pad* "},
		{"blank not wrapped", Node{Text: " ", Bold: true}, FlavorWhatsApp, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render([]Node{paragraph(tt.leaf)}, tt.flavor))
		})
	}
}

func TestRenderLinks(t *testing.T) {
	link := Node{Type: TypeLink, URL: "https://example.com", Children: []Node{{Text: "site"}}}
	bare := Node{Type: TypeLink, URL: "https://example.com", Children: []Node{{Text: "https://example.com"}}}

	assert.Equal(t, "see site (https://example.com)", Render([]Node{paragraph(Node{Text: "see "}, link)}, FlavorWhatsApp))
	assert.Equal(t, "see [site](https://example.com)", Render([]Node{paragraph(Node{Text: "see "}, link)}, FlavorCommon))
	assert.Equal(t, "https://example.com", Render([]Node{paragraph(bare)}, FlavorWhatsApp))
}

func TestRenderLists(t *testing.T) {
	item := func(text string, nested ...Node) Node {
		children := []Node{{Type: TypeListItemContent, Children: []Node{{Text: text}}}}
		return Node{Type: TypeListItem, Children: append(children, nested...)}
	}
	nodes := []Node{
		paragraph(Node{Text: "Pick:"}),
		{Type: TypeNumberedList, Children: []Node{
			item("one"),
			item("two", Node{Type: TypeBulletList, Children: []Node{item("nested")}}),
		}},
	}

	assert.Equal(t, "Pick:\n1. one\n2. two\n  - nested", Render(nodes, FlavorWhatsApp))
}

func TestRenderVariablesAreTransparent(t *testing.T) {
	nodes := []Node{paragraph(
		Node{Text: "Hi "},
		Node{Type: TypeInlineVariable, Children: []Node{{Text: "John", Bold: true}}},
	)}

	assert.Equal(t, "Hi *John*", Render(nodes, FlavorWhatsApp))
}

func TestRenderUnknownFlavorFallsBackToCommon(t *testing.T) {
	nodes := []Node{paragraph(Node{Text: "b", Bold: true})}
	assert.Equal(t, "**b**", Render(nodes, Flavor("html")))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil, FlavorWhatsApp))
}

func TestNodeDecodesEditorJSON(t *testing.T) {
	raw := `[{"type":"p","children":[{"text":"Continue?","bold":true}]}]`

	var nodes []Node
	require.NoError(t, json.Unmarshal([]byte(raw), &nodes))
	assert.Equal(t, "*Continue?*", Render(nodes, FlavorWhatsApp))
}
