// Package richtext renders the flow editor's rich-text node tree into the
// markdown dialect a messaging channel understands.
package richtext

import (
	"strconv"
	"strings"
)

// Flavor selects the markdown dialect produced by Render.
type Flavor string

const (
	FlavorWhatsApp Flavor = "whatsapp"
	FlavorCommon   Flavor = "common"
)

// Element types found in rich-text trees.
const (
	TypeParagraph       = "p"
	TypeLink            = "a"
	TypeBulletList      = "ul"
	TypeNumberedList    = "ol"
	TypeListItem        = "li"
	TypeListItemContent = "lic"
	TypeVariable        = "variable"
	TypeInlineVariable  = "inline-variable"
)

// Node is either an element (Type set, Children) or a text leaf (Text plus marks).
type Node struct {
	Type     string `json:"type,omitempty"`
	Children []Node `json:"children,omitempty"`
	URL      string `json:"url,omitempty"`

	Text          string `json:"text,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Code          bool   `json:"code,omitempty"`
}

func (n Node) isLeaf() bool { return n.Type == "" && len(n.Children) == 0 }

func (n Node) isList() bool { return n.Type == TypeBulletList || n.Type == TypeNumberedList }

type delimiters struct {
	bold, italic, strike, code string
}

var flavors = map[Flavor]delimiters{
	FlavorWhatsApp: {bold: "*", italic: "_", strike: "~", code: "```"},
	FlavorCommon:   {bold: "**", italic: "_", strike: "~~", code: "`"},
}

// Render converts nodes to markdown. Top-level nodes are blocks joined by a
// newline. Unknown flavors render as FlavorCommon. Underline has no markdown
// equivalent and is dropped.
func Render(nodes []Node, flavor Flavor) string {
	d, ok := flavors[flavor]
	if !ok {
		flavor, d = FlavorCommon, flavors[FlavorCommon]
	}
	r := renderer{flavor: flavor, d: d}

	blocks := make([]string, 0, len(nodes))
	for _, n := range nodes {
		blocks = append(blocks, r.block(n, ""))
	}
	return strings.Join(blocks, "\n")
}

type renderer struct {
	flavor Flavor
	d      delimiters
}

func (r renderer) block(n Node, indent string) string {
	if n.isList() {
		return r.list(n, indent)
	}
	return r.inline([]Node{n})
}

func (r renderer) list(n Node, indent string) string {
	var lines []string
	for i, item := range n.Children {
		bullet := "- "
		if n.Type == TypeNumberedList {
			bullet = strconv.Itoa(i+1) + ". "
		}

		var text strings.Builder
		var nested []string
		for _, c := range item.Children {
			switch {
			case c.isList():
				nested = append(nested, r.list(c, indent+"  "))
			case c.Type == TypeListItemContent:
				text.WriteString(r.inline(c.Children))
			default:
				text.WriteString(r.inline([]Node{c}))
			}
		}
		lines = append(lines, indent+bullet+text.String())
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

func (r renderer) inline(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch {
		case n.isLeaf():
			b.WriteString(r.leaf(n))
		case n.Type == TypeLink:
			b.WriteString(r.link(n))
		default:
			b.WriteString(r.inline(n.Children))
		}
	}
	return b.String()
}

func (r renderer) link(n Node) string {
	text := r.inline(n.Children)
	if n.URL == "" {
		return text
	}
	if text == "" || text == n.URL {
		return n.URL
	}
	if r.flavor == FlavorWhatsApp {
		return text + " (" + n.URL + ")"
	}
	return "[" + text + "](" + n.URL + ")"
}

// leaf wraps the trimmed text in mark delimiters, leaving surrounding
// whitespace outside since channels ignore markers that touch spaces.
func (r renderer) leaf(n Node) string {
	core := strings.TrimSpace(n.Text)
	if core == "" {
		return n.Text
	}
	lead := n.Text[:strings.Index(n.Text, core)]
	trail := n.Text[len(lead)+len(core):]

	if n.Code {
		core = r.d.code + core + r.d.code
	}
	if n.Strikethrough {
		core = r.d.strike + core + r.d.strike
	}
	if n.Italic {
		core = r.d.italic + core + r.d.italic
	}
	if n.Bold {
		core = r.d.bold + core + r.d.bold
	}
	return lead + core + trail
}
