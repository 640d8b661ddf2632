/*
Package markup writes DOM trees back to markup.

The output stays within the grammar accepted by package dom, so parsing it
again yields an equal tree, subject to these limitations:

   - Attribute values are HTML-escaped on output, while the parser does not
     decode entities. Values containing & < > or ' will not survive a round trip.
   - Elements named like an HTML void element (br, img, …), as opposed to
     meta nodes, are written without a close tag, which the parser rejects.
   - Text is written verbatim; whitespace the parser skipped after open tags
     is not restored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/minidom/dom"
	g "maragu.dev/gomponents"
)

const doctype = "<!DOCTYPE html>"

// Render writes doc, preceded by the doctype declaration.
func Render(w io.Writer, doc *dom.Document) error {
	if _, err := io.WriteString(w, doctype); err != nil {
		return err
	}
	return RenderNode(w, doc.Root)
}

// RenderNode writes the tree below n.
func RenderNode(w io.Writer, n *dom.Node) error {
	return Component(n).Render(w)
}

// String returns the markup for the tree below n.
func String(n *dom.Node) string {
	var b strings.Builder
	_ = RenderNode(&b, n)
	return b.String()
}

// Component converts the tree below n into a gomponents node, ready to be
// embedded into other components.
func Component(n *dom.Node) g.Node {
	switch t := n.Type.(type) {
	case dom.Text:
		return g.Raw(string(t))
	case *dom.MetaData:
		if len(t.Attributes) == 0 {
			// "<meta>" would be read back as the start of an element
			return g.Raw("<meta >")
		}
		return g.El("meta", attributes(t.Attributes)...)
	case *dom.ElementData:
		children := attributes(t.Attributes)
		for _, ch := range n.Children {
			children = append(children, Component(ch))
		}
		return g.El(t.TagName, children...)
	}
	return nil
}

func attributes(attrs dom.AttrMap) []g.Node {
	nodes := make([]g.Node, 0, len(attrs))
	for _, k := range attrs.Keys() {
		nodes = append(nodes, g.Attr(k, attrs[k]))
	}
	return nodes
}
