package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// extractTitle returns the text of the first <title> element
func extractTitle(doc *html.Node) string {
	title, ok := findNodeByTag(doc, "title")
	if !ok {
		return ""
	}
	return strings.TrimSpace(textContent(title))
}

func findNodeByTag(n *html.Node, tag string) (*html.Node, bool) {
	if n.Type == html.ElementNode && n.Data == tag {
		return n, true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, ok := findNodeByTag(c, tag); ok {
			return result, true
		}
	}

	return nil, false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
