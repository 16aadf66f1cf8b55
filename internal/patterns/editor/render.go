package editor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer turns elements into a textual format.
type Renderer interface {
	Format() string
	Render(elements []Element) (string, error)
}

// PlainRenderer renders for a terminal.
type PlainRenderer struct{}

func (PlainRenderer) Format() string { return "text" }

func (PlainRenderer) Render(elements []Element) (string, error) {
	var b strings.Builder
	for _, e := range elements {
		switch el := e.(type) {
		case Text:
			b.WriteString(el.Content)
		case Image:
			fmt.Fprintf(&b, "[Image: %s]", el.Path)
		case NewLine:
			b.WriteByte('\n')
		case TabSpace:
			b.WriteByte('\t')
		default:
			return "", fmt.Errorf("plain renderer: unsupported element %T", e)
		}
	}
	return b.String(), nil
}

// HTMLRenderer renders into an HTML fragment. Each NewLine closes the
// current paragraph.
type HTMLRenderer struct{}

func (HTMLRenderer) Format() string { return "html" }

func (HTMLRenderer) Render(elements []Element) (string, error) {
	root := element(atom.Div, html.Attribute{Key: "class", Val: "document"})
	para := element(atom.P)
	root.AppendChild(para)

	for _, e := range elements {
		switch el := e.(type) {
		case Text:
			para.AppendChild(&html.Node{Type: html.TextNode, Data: el.Content})
		case Image:
			alt := el.Alt
			if alt == "" {
				alt = el.Path
			}
			para.AppendChild(element(atom.Img,
				html.Attribute{Key: "src", Val: el.Path},
				html.Attribute{Key: "alt", Val: alt},
			))
		case NewLine:
			para = element(atom.P)
			root.AppendChild(para)
		case TabSpace:
			tab := element(atom.Span, html.Attribute{Key: "class", Val: "tab"})
			tab.AppendChild(&html.Node{Type: html.TextNode, Data: "\t"})
			para.AppendChild(tab)
		default:
			return "", fmt.Errorf("html renderer: unsupported element %T", e)
		}
	}

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
