package dom

import "github.com/npillmayer/minidom/maybe"

// FirstElementByTagName searches the tree below and including n in pre-order
// (a node before its children, children in document order) and returns the
// first element with the given tag name. Only a single node is ever
// returned; meta nodes never match.
func FirstElementByTagName(n *Node, name string) maybe.Maybe[*Node] {
	return FirstMatch(n, func(e *ElementData) bool {
		return e.TagName == name
	})
}

// FirstMatch returns the first element below and including n, in pre-order,
// for which pred is true.
func FirstMatch(n *Node, pred func(*ElementData) bool) maybe.Maybe[*Node] {
	if n == nil {
		return maybe.Nothing[*Node]()
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e, ok := top.Element(); ok && pred(e) {
			return maybe.Just(top)
		}
		// reverse, so the first child gets popped first
		for i := len(top.Children) - 1; i >= 0; i-- {
			stack = append(stack, top.Children[i])
		}
	}
	return maybe.Nothing[*Node]()
}

// ElementByID returns the first element with attribute id equal to id.
func ElementByID(n *Node, id string) maybe.Maybe[*Node] {
	return FirstMatch(n, func(e *ElementData) bool {
		v, ok := e.Attributes["id"]
		return ok && v == id
	})
}
