package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients of the document tree will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Merge concatenates the rules of several stylesheets into the first one,
// preserving order. It returns nil if sheets is empty.
func Merge(sheets ...StyleSheet) StyleSheet {
	if len(sheets) == 0 {
		return nil
	}
	first := sheets[0]
	for _, s := range sheets[1:] {
		first.AppendRules(s)
	}
	tracer().Debugf("merged %d stylesheets", len(sheets))
	return first
}
