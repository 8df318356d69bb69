package report

import (
	"strings"

	"golang.org/x/net/html"
)

// FlattenHTML reduces markup to its text content in document order,
// the way textContent does: tags vanish, text nodes concatenate.
// Plain strings pass through untouched.
func FlattenHTML(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return markup
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.TrimSpace(sb.String())
}
