// Package normalize reduces HTML fragments to a canonical text form so that
// two DOM-equivalent fragments compare equal as strings.
//
// The canonical form puts every element, text run and comment on its own
// line, indented one space per depth. Attributes are sorted by name,
// whitespace-only text is dropped and other text is trimmed with internal
// runs collapsed. Inside <pre> and <textarea> text is kept verbatim.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never have an end tag.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

// DOM parses s as the content of a <body> and returns its canonical form.
func DOM(s string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeNode(&sb, n, 0)
	}
	return sb.String(), nil
}

// Equal reports whether a and b normalize to the same form. Input that fails
// to parse is compared verbatim.
func Equal(a, b string) bool {
	na, errA := DOM(a)
	nb, errB := DOM(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return na == nb
}

func writeNode(sb *strings.Builder, n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		text := collapseSpace(n.Data)
		if text == "" {
			return
		}
		line(sb, depth, html.EscapeString(text))
	case html.CommentNode:
		line(sb, depth, "<!--"+strings.TrimSpace(n.Data)+"-->")
	case html.ElementNode:
		line(sb, depth, startTag(n))
		if voidElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Pre || n.DataAtom == atom.Textarea {
			var raw strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writeVerbatim(&raw, c)
			}
			if raw.Len() > 0 {
				line(sb, depth+1, raw.String())
			}
		} else {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writeNode(sb, c, depth+1)
			}
		}
		line(sb, depth, "</"+n.Data+">")
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(sb, c, depth)
		}
	}
}

// writeVerbatim renders a preformatted subtree on a single logical line.
func writeVerbatim(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(strings.ReplaceAll(html.EscapeString(n.Data), "\n", `\n`))
	case html.CommentNode:
		sb.WriteString("<!--" + n.Data + "-->")
	case html.ElementNode:
		sb.WriteString(startTag(n))
		if voidElements[n.DataAtom] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeVerbatim(sb, c)
		}
		sb.WriteString("</" + n.Data + ">")
	}
}

func startTag(n *html.Node) string {
	attrs := make([]html.Attribute, len(n.Attr))
	copy(attrs, n.Attr)
	sort.Slice(attrs, func(i, j int) bool {
		if attrs[i].Namespace != attrs[j].Namespace {
			return attrs[i].Namespace < attrs[j].Namespace
		}
		return attrs[i].Key < attrs[j].Key
	})

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range attrs {
		sb.WriteString(" ")
		if a.Namespace != "" {
			sb.WriteString(a.Namespace + ":")
		}
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}

func line(sb *strings.Builder, depth int, s string) {
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteString(s)
	sb.WriteString("\n")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
