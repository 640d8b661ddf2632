/*
Package w3cdom connects DOM trees of package dom to the W3C-style node type of
golang.org/x/net/html.

Many Go libraries for HTML processing operate on *html.Node. A Mirror is an
html.Node tree built from a dom tree, remembering for every html node the dom
node it was created from. This way clients may run such a library (here:
cascadia for CSS selectors) and map the results back.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/minidom/maybe"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'minidom.w3cdom'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.w3cdom")
}

// Mirror is an html.Node copy of a dom tree.
type Mirror struct {
	root   *html.Node               // of type html.DocumentNode
	origin map[*html.Node]*dom.Node // html node -> dom node it mirrors
}

// NewMirror builds the html.Node tree for doc. The top node is of type
// html.DocumentNode with the mirror of doc.Root as its only child.
// Meta nodes become <meta> elements, attributes appear in lexical order of
// their keys.
func NewMirror(doc *dom.Document) *Mirror {
	m := &Mirror{
		root:   &html.Node{Type: html.DocumentNode},
		origin: make(map[*html.Node]*dom.Node),
	}
	if doc == nil || doc.Root == nil {
		return m
	}
	type item struct {
		n      *dom.Node
		parent *html.Node
	}
	stack := []item{{doc.Root, m.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h := toHTML(top.n)
		m.origin[h] = top.n
		top.parent.AppendChild(h)
		for i := len(top.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{top.n.Children[i], h})
		}
	}
	tracer().Debugf("mirrored %d nodes", len(m.origin))
	return m
}

func toHTML(n *dom.Node) *html.Node {
	switch t := n.Type.(type) {
	case dom.Text:
		return &html.Node{Type: html.TextNode, Data: string(t)}
	case *dom.ElementData:
		return element(t.TagName, t.Attributes)
	case *dom.MetaData:
		return element("meta", t.Attributes)
	}
	panic(fmt.Sprintf("w3cdom: unknown node type %T", n.Type))
}

func element(name string, attrs dom.AttrMap) *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	for _, k := range attrs.Keys() {
		h.Attr = append(h.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	return h
}

// HTMLNode returns the top node (of type html.DocumentNode).
func (m *Mirror) HTMLNode() *html.Node {
	return m.root
}

// Origin returns the dom node h was built from. For the top document node
// and for foreign nodes it returns nil.
func (m *Mirror) Origin(h *html.Node) *dom.Node {
	return m.origin[h]
}

// QuerySelector returns the first element, in document order, matching a
// CSS selector. Meta nodes are matched as <meta> elements.
func (m *Mirror) QuerySelector(selector string) (maybe.Maybe[*dom.Node], error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return maybe.Nothing[*dom.Node](), fmt.Errorf("w3cdom: invalid selector %q: %w", selector, err)
	}
	h := sel.MatchFirst(m.root)
	if h == nil {
		return maybe.Nothing[*dom.Node](), nil
	}
	return maybe.Just(m.Origin(h)), nil
}

// QuerySelector is a shortcut for NewMirror(doc).QuerySelector(selector).
func QuerySelector(doc *dom.Document, selector string) (maybe.Maybe[*dom.Node], error) {
	return NewMirror(doc).QuerySelector(selector)
}
