package scraper

import (
	"strings"

	"golang.org/x/net/html"
)

// Container tags that can hold a release page's JEP link list.
var containerTags = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
	"ul":      true,
	"ol":      true,
}

// documentOrderNext returns the node following n in document order.
// When skipSubtree is true, n's children are not visited.
func documentOrderNext(n *html.Node, skipSubtree bool) *html.Node {
	if !skipSubtree && n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// firstFollowingElement returns the first element after n (excluding n's
// own subtree) whose tag is in tags, in document order.
func firstFollowingElement(n *html.Node, tags map[string]bool) *html.Node {
	for cur := documentOrderNext(n, true); cur != nil; cur = documentOrderNext(cur, false) {
		if cur.Type == html.ElementNode && tags[cur.Data] {
			return cur
		}
	}
	return nil
}

// nextSiblingElement returns n's next sibling element, skipping text and
// comment nodes. Returns nil when n is the last element of its parent.
func nextSiblingElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// forEachElement visits every element named tag inside root (root included)
// in document order. The visitor returns false to stop the walk.
func forEachElement(root *html.Node, tag string, visit func(*html.Node) bool) {
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			if !visit(n) {
				return false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// elementText returns the concatenated, trimmed text content of a subtree.
func elementText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
