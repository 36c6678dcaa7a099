// Package dom provides the small set of tree operations the quiz page
// needs on top of golang.org/x/net/html nodes: attach/detach,
// insert-before with a fallback, class and attribute manipulation, and
// simple queries. All functions tolerate nil nodes and degrade to no-ops
// so callers can stay on the page's silent-failure path.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates an unattached element node. Attribute key/value
// pairs alternate; a trailing key without a value is ignored.
func NewElement(tag string, attrPairs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrPairs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrPairs[i], Val: attrPairs[i+1]})
	}
	return n
}

// NewText creates an unattached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Append detaches child from its current parent (if any) and appends it
// as the last child of parent.
func Append(parent, child *html.Node) {
	if parent == nil || child == nil {
		return
	}
	Detach(child)
	parent.AppendChild(child)
}

// InsertBefore detaches n and inserts it as a child of parent,
// immediately before ref. When ref is nil or is no longer a child of
// parent, n is appended as the last child instead.
func InsertBefore(parent, n, ref *html.Node) {
	if parent == nil || n == nil {
		return
	}
	Detach(n)
	if ref == nil || ref.Parent != parent {
		parent.AppendChild(n)
		return
	}
	parent.InsertBefore(n, ref)
}

// Detach removes n from its parent. Safe to call on unattached nodes.
func Detach(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Clear removes all children of n.
func Clear(n *html.Node) {
	if n == nil {
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// Attr returns the value of the named attribute, or "" if absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute.
func ID(n *html.Node) string { return Attr(n, "id") }

func classes(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether the element carries the class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds the class if it is not already present.
func AddClass(n *html.Node, class string) {
	if n == nil || HasClass(n, class) {
		return
	}
	cur := Attr(n, "class")
	if cur == "" {
		SetAttr(n, "class", class)
		return
	}
	SetAttr(n, "class", cur+" "+class)
}

// RemoveClass removes the class if present.
func RemoveClass(n *html.Node, class string) {
	if n == nil {
		return
	}
	cs := classes(n)
	out := cs[:0]
	for _, c := range cs {
		if c != class {
			out = append(out, c)
		}
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// ToggleClass flips the class and reports the resulting state.
func ToggleClass(n *html.Node, class string) bool {
	if HasClass(n, class) {
		RemoveClass(n, class)
		return false
	}
	AddClass(n, class)
	return true
}

// SetClass sets or removes the class according to on.
func SetClass(n *html.Node, class string, on bool) {
	if on {
		AddClass(n, class)
	} else {
		RemoveClass(n, class)
	}
}

// Walk visits n and every descendant in document order until fn returns
// false.
func Walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Query returns all element descendants of root (including root itself)
// matching the predicate, in document order.
func Query(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// First returns the first element matching the predicate, or nil.
func First(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ElementByID returns the element with the given id, or nil.
func ElementByID(root *html.Node, id string) *html.Node {
	return First(root, func(n *html.Node) bool { return ID(n) == id })
}

// ByClass returns a predicate matching elements carrying the class.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

// ByTag returns a predicate matching elements with the given tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// Closest walks from n up through its ancestors and returns the first
// element (n included) matching the predicate, or nil.
func Closest(n *html.Node, match func(*html.Node) bool) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && match(cur) {
			return cur
		}
	}
	return nil
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	var sb strings.Builder
	Walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	if n == nil {
		return
	}
	Clear(n)
	n.AppendChild(NewText(text))
}

// Render serializes the tree rooted at n as HTML.
func Render(w io.Writer, n *html.Node) error {
	if n == nil {
		return fmt.Errorf("render: nil node")
	}
	return html.Render(w, n)
}

// RenderString serializes the tree rooted at n to a string, ignoring
// write errors (bytes.Buffer cannot fail).
func RenderString(n *html.Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
