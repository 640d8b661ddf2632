/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'minidom.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.domdbg")
}

// --- Tree print ------------------------------------------------------------

// Print returns an indented, line-drawn listing of the tree below n.
func Print(n *dom.Node) string {
	if n == nil {
		return ""
	}
	root := tp.New()
	root.SetValue(label(n))
	type item struct {
		node   *dom.Node
		branch tp.Tree
	}
	var stack []item
	pushChildren := func(n *dom.Node, branch tp.Tree) {
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{n.Children[i], branch})
		}
	}
	pushChildren(n, root)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(top.node.Children) == 0 {
			top.branch.AddNode(label(top.node))
			continue
		}
		pushChildren(top.node, top.branch.AddBranch(label(top.node)))
	}
	return root.String()
}

func label(n *dom.Node) string {
	switch t := n.Type.(type) {
	case dom.Text:
		return fmt.Sprintf("%q", shorten(string(t), 24))
	case *dom.ElementData:
		if len(t.Attributes) == 0 {
			return "<" + t.TagName + ">"
		}
		return "<" + t.TagName + "> " + t.Attributes.String()
	case *dom.MetaData:
		return "<meta> " + t.Attributes.String()
	}
	return "?"
}

func shorten(s string, max int) string {
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	N    *dom.Node
	Name string
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a DOM tree in GraphViz (DOT) format.
// Element nodes are drawn as ellipses, meta nodes as diamonds and text nodes
// as boxes showing the beginning of their content.
func ToGraphViz(root *dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"attrs":       attrText,
			"element":     asElement,
			"meta":        asMeta,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		if err = nodes(root, w, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// nodes writes nodes and edges in pre-order. Names are handed out in the
// order nodes are visited.
func nodes(root *dom.Node, w io.Writer, gparams *graphParamsType) error {
	count := 0
	name := func() string {
		count++
		return fmt.Sprintf("node%05d", count)
	}
	type item struct {
		n      *dom.Node
		parent *node
	}
	stack := []item{{root, nil}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		this := &node{top.n, name()}
		if err := gparams.NodeTmpl.Execute(w, this); err != nil {
			return err
		}
		if top.parent != nil {
			if err := gparams.EdgeTmpl.Execute(w, edge{*top.parent, *this}); err != nil {
				return err
			}
		}
		for i := len(top.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{top.n.Children[i], this})
		}
	}
	return nil
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		tracer().Errorf("dot failed: %v", err)
		t.Error(err.Error())
	}
}

func shortText(n *dom.Node) string {
	text, _ := n.Text()
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func asElement(n *dom.Node) *dom.ElementData {
	e, _ := n.Element()
	return e
}

func asMeta(n *dom.Node) *dom.MetaData {
	m, _ := n.Meta()
	return m
}

func attrText(attrs dom.AttrMap) string {
	var b strings.Builder
	for _, k := range attrs.Keys() {
		fmt.Fprintf(&b, "\\n%s=%s", k, strings.ReplaceAll(attrs[k], `"`, `\"`))
	}
	return b.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if element .N }}
{{ .Name }}	[ label="{{ (element .N).TagName }}{{ attrs (element .N).Attributes }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else if meta .N }}
{{ .Name }}	[ label="meta{{ attrs (meta .N).Attributes }}" shape=diamond style=filled fillcolor=khaki ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
