package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/minidom/maybe"
)

// Document is the result of parsing a complete markup source.
type Document struct {
	Root    *Node  // always an element node
	BaseURL string // source path if loaded from a file, empty otherwise
}

// Node is the building block of the document tree. A node exclusively owns
// its children; there are no parent links.
type Node struct {
	Type     NodeType
	Children []*Node // in document order; always empty for text and meta nodes
}

// NodeType is a closed union of Text, *ElementData and *MetaData.
// Clients discriminate with a type switch:
//
//	switch t := n.Type.(type) {
//	case dom.Text:
//	case *dom.ElementData:
//	case *dom.MetaData:
//	}
type NodeType interface {
	isNodeType()
}

// Text is the verbatim content of a text node.
type Text string

func (Text) isNodeType() {}

// ElementData is the payload of an element node.
type ElementData struct {
	TagName    string
	Attributes AttrMap
}

func (*ElementData) isNodeType() {}

// MetaData is the payload of a <meta …> node. Its tag name is implicitly "meta".
type MetaData struct {
	Attributes AttrMap
}

func (*MetaData) isNodeType() {}

// AttrMap maps attribute keys to values. Keys are unique; when markup repeats
// a key, the last value wins.
type AttrMap map[string]string

// Keys returns the attribute keys in lexical order.
func (attrs AttrMap) Keys() []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Constructors ----------------------------------------------------------

// NewText creates a text node.
func NewText(s string) *Node {
	return &Node{Type: Text(s)}
}

// NewElement creates an element node. A nil attribute map is replaced by an
// empty one.
func NewElement(tagName string, attrs AttrMap, children ...*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Type:     &ElementData{TagName: tagName, Attributes: attrs},
		Children: children,
	}
}

// NewMeta creates a meta node.
func NewMeta(attrs AttrMap) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{Type: &MetaData{Attributes: attrs}}
}

// --- Node accessors --------------------------------------------------------

// Element returns the element payload of n, if n is an element node.
func (n *Node) Element() (*ElementData, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.Type.(*ElementData)
	return e, ok
}

// Meta returns the meta payload of n, if n is a meta node.
func (n *Node) Meta() (*MetaData, bool) {
	if n == nil {
		return nil, false
	}
	m, ok := n.Type.(*MetaData)
	return m, ok
}

// Text returns the content of n, if n is a text node.
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "", false
	}
	t, ok := n.Type.(Text)
	return string(t), ok
}

// IsElement is true for element nodes. Meta nodes are not elements.
func (n *Node) IsElement() bool {
	_, ok := n.Element()
	return ok
}

// TagName returns the tag name of element and meta nodes, and "#text" for
// text nodes.
func (n *Node) TagName() string {
	switch t := n.Type.(type) {
	case *ElementData:
		return t.TagName
	case *MetaData:
		return "meta"
	case Text:
		return "#text"
	}
	return ""
}

// TextContent concatenates the content of all text nodes below and
// including n, in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t, ok := top.Text(); ok {
			b.WriteString(t)
		}
		for i := len(top.Children) - 1; i >= 0; i-- {
			stack = append(stack, top.Children[i])
		}
	}
	return b.String()
}

func (n *Node) String() string {
	if n == nil {
		return "(Node nil)"
	}
	switch t := n.Type.(type) {
	case Text:
		return fmt.Sprintf("(Text %q)", string(t))
	case *ElementData:
		return fmt.Sprintf("(Element <%s> %s #ch=%d)", t.TagName, t.Attributes, len(n.Children))
	case *MetaData:
		return fmt.Sprintf("(Meta %s)", t.Attributes)
	}
	return "(Node ?)"
}

func (attrs AttrMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range attrs.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%q", k, attrs[k])
	}
	b.WriteByte('}')
	return b.String()
}

// --- Element accessors -----------------------------------------------------

// ID returns the value of attribute "id".
func (e *ElementData) ID() maybe.Maybe[string] {
	return e.Attr("id")
}

// Attr returns the value of attribute key.
func (e *ElementData) Attr(key string) maybe.Maybe[string] {
	v, ok := e.Attributes[key]
	return maybe.Of(v, ok)
}

// Classes splits attribute "class" at single space characters and returns
// the set of tokens. Empty tokens, produced by consecutive spaces, are
// dropped. A missing attribute yields an empty set.
func (e *ElementData) Classes() map[string]struct{} {
	set := make(map[string]struct{})
	classlist, ok := e.Attributes["class"]
	if !ok {
		return set
	}
	for _, c := range strings.Split(classlist, " ") {
		if c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}

// HasClass checks if class is one of the element's classes.
func (e *ElementData) HasClass(class string) bool {
	_, ok := e.Classes()[class]
	return ok
}
