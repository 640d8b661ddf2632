/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/minidom/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minidom.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse reads CSS source and wraps the result.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
// other has to be a *CSSStyles, otherwise AppendRules panics.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i, r := range sheet.css.Rules {
		rules[i] = Rule(*r)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// If the key occurs more than once, the last declaration wins.
func (r Rule) Value(key string) string {
	value := ""
	for _, d := range r.Declarations {
		if d.Property == key {
			value = d.Value
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits the <head> and <body> elements of a document
// and searches for embedded <style>s among their direct children. It returns
// the content of style-elements as style sheets, in document order, head first.
func ExtractStyleElements(doc *dom.Document) ([]*CSSStyles, error) {
	if doc == nil || doc.Root == nil {
		return nil, nil
	}
	var sheets []*CSSStyles
	for _, tag := range []string{"head", "body"} {
		n, ok := dom.FirstElementByTagName(doc.Root, tag).Get()
		if !ok {
			continue
		}
		css, err := extractStyles(n)
		sheets = append(sheets, css...)
		if err != nil {
			return sheets, err
		}
	}
	tracer().Debugf("found %d embedded stylesheets", len(sheets))
	return sheets, nil
}

func extractStyles(n *dom.Node) ([]*CSSStyles, error) {
	var css []*CSSStyles
	for _, ch := range n.Children {
		if !ch.IsElement() || ch.TagName() != "style" {
			continue
		}
		c, err := Parse(ch.TextContent())
		if err != nil {
			return css, fmt.Errorf("douceuradapter: invalid <style> in <%s>: %w", n.TagName(), err)
		}
		css = append(css, c)
	}
	return css, nil
}
