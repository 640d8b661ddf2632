package dom_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementWithText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.dom")
	defer teardown()
	//
	for _, c := range []struct{ tag, text string }{
		{"p", "some text"},
		{"h3", "part 2"},
		{"div", "a > b, \"quoted\" & 'single'\n\ttabbed"},
	} {
		doc, err := dom.Parse([]byte("<" + c.tag + ">" + c.text + "</" + c.tag + ">"))
		require.NoError(t, err)
		expected := dom.NewElement(c.tag, nil, dom.NewText(c.text))
		if diff := cmp.Diff(expected, doc.Root); diff != "" {
			t.Errorf("<%s> mismatch (-want +got):\n%s", c.tag, diff)
		}
	}
}

func TestAttributeFolding(t *testing.T) {
	doc, err := dom.Parse([]byte(`<div foo="bar" baz="quxx"></div>`))
	require.NoError(t, err)
	e, ok := doc.Root.Element()
	require.True(t, ok)
	assert.Equal(t, dom.AttrMap{"foo": "bar", "baz": "quxx"}, e.Attributes)

	doc, err = dom.Parse([]byte(`<div a="1" a="2"></div>`))
	require.NoError(t, err)
	e, _ = doc.Root.Element()
	assert.Equal(t, dom.AttrMap{"a": "2"}, e.Attributes)
}

func TestNesting(t *testing.T) {
	doc, err := dom.Parse([]byte("<html><body><div>x</div></body></html>"))
	require.NoError(t, err)
	expected := dom.NewElement("html", nil,
		dom.NewElement("body", nil,
			dom.NewElement("div", nil, dom.NewText("x"))))
	if diff := cmp.Diff(expected, doc.Root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedWithWhitespace(t *testing.T) {
	input := `
     <html lang="en">
       <body>
        <div>part 1</div>
        <h3>part 2</h3>
       </body>
     </html>
    `
	doc, err := dom.Parse([]byte(input))
	require.NoError(t, err)
	html, _ := doc.Root.Element()
	assert.Equal(t, "html", html.TagName)
	assert.Equal(t, "en", html.Attributes["lang"])
	// whitespace directly after an open tag is skipped, whitespace after
	// a child element is text
	require.Len(t, doc.Root.Children, 2)
	body := doc.Root.Children[0]
	assert.Equal(t, "body", body.TagName())
	require.Len(t, body.Children, 4)
	assert.Equal(t, "div", body.Children[0].TagName())
	assert.Equal(t, "#text", body.Children[1].TagName())
	assert.Equal(t, "h3", body.Children[2].TagName())
	text, _ := body.Children[3].Text()
	assert.Equal(t, "\n       ", text)
}

func TestMetaNode(t *testing.T) {
	input := `
    <!DOCTYPE html>
<html>
    <head>
        <meta charset="UTF-8"></head></html>
    `
	doc, err := dom.Parse([]byte(input))
	require.NoError(t, err)
	expected := &dom.Document{
		Root: dom.NewElement("html", nil,
			dom.NewElement("head", nil,
				dom.NewMeta(dom.AttrMap{"charset": "UTF-8"}))),
	}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	meta := doc.Root.Children[0].Children[0]
	assert.False(t, meta.IsElement(), "meta node must not be an element")
	assert.Empty(t, meta.Children)
}

func TestMetaCannotBeRoot(t *testing.T) {
	_, err := dom.Parse([]byte(`<meta charset="UTF-8">`))
	assert.ErrorIs(t, err, dom.ErrSyntax)
}

func TestDoctypeIsOptional(t *testing.T) {
	for _, input := range []string{
		"<!DOCTYPE html><html></html>",
		"<html></html>",
		"\n  <!DOCTYPE html>\n<html></html>\n",
	} {
		doc, err := dom.Parse([]byte(input))
		require.NoError(t, err, input)
		if diff := cmp.Diff(dom.NewElement("html", nil), doc.Root); diff != "" {
			t.Errorf("%q: root mismatch (-want +got):\n%s", input, diff)
		}
		assert.Equal(t, "", doc.BaseURL)
	}
	_, err := dom.Parse([]byte("<!doctype html><html></html>"))
	assert.ErrorIs(t, err, dom.ErrSyntax, "doctype literal is case-sensitive")
}

func TestFirstElementByTagName(t *testing.T) {
	input := `<html><section><div id="deep">a</div></section><div id="shallow">b</div></html>`
	doc, err := dom.Parse([]byte(input))
	require.NoError(t, err)
	div, ok := dom.FirstElementByTagName(doc.Root, "div").Get()
	require.True(t, ok)
	e, _ := div.Element()
	assert.Equal(t, "deep", e.ID().WithDefault(""), "pre-order must find the nested div first")

	var html *dom.Node
	switch m := dom.FirstElementByTagName(doc.Root, "html").Match(); m {
	case m.Just(&html):
		assert.Same(t, doc.Root, html)
	case m.Nothing():
		t.Error("expected to find the root element itself")
	}
	assert.True(t, dom.FirstElementByTagName(doc.Root, "span").IsNothing())
	assert.True(t, dom.FirstElementByTagName(nil, "div").IsNothing())
}

func TestFirstElementIgnoresMeta(t *testing.T) {
	doc, err := dom.Parse([]byte(`<head><meta charset="UTF-8"><meta></meta></head>`))
	require.NoError(t, err)
	meta, ok := dom.FirstElementByTagName(doc.Root, "meta").Get()
	require.True(t, ok)
	assert.Same(t, doc.Root.Children[1], meta, "only the <meta></meta> element may match")
}

func TestElementByID(t *testing.T) {
	doc, err := dom.Parse([]byte(`<ul><li id="a">1</li><li id="b">2</li></ul>`))
	require.NoError(t, err)
	li, ok := dom.ElementByID(doc.Root, "b").Get()
	require.True(t, ok)
	assert.Equal(t, "2", li.TextContent())
	assert.True(t, dom.ElementByID(doc.Root, "c").IsNothing())
}

func TestIDAndClasses(t *testing.T) {
	doc, err := dom.Parse([]byte(`<div id="main" class="a b"><p class="x  y"></p><span></span></div>`))
	require.NoError(t, err)
	div, _ := doc.Root.Element()
	assert.Equal(t, "main", div.ID().WithDefault(""))
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, div.Classes())
	assert.True(t, div.HasClass("a"))
	assert.False(t, div.HasClass("c"))

	p, _ := doc.Root.Children[0].Element()
	assert.Equal(t, map[string]struct{}{"x": {}, "y": {}}, p.Classes(), "empty tokens are dropped")
	assert.True(t, p.ID().IsNothing())

	span, _ := doc.Root.Children[1].Element()
	assert.Empty(t, span.Classes())
	assert.True(t, span.Attr("title").IsNothing())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.dom")
	defer teardown()
	//
	for _, c := range []struct {
		name     string
		input    string
		offset   int
		expected string
	}{
		{"unterminated element", "<div>", 5, "</div>"},
		{"unterminated nested element", "<html><div>text</html>", 22, "</html>"},
		{"unmatched quote", `<div class="a>text</div>`, 24, `'"'`},
		{"digit in attribute key", `<div data1="x"></div>`, 9, "'='"},
		{"hyphen in attribute key", `<div data-x="x"></div>`, 9, "'='"},
		{"void element", "<p>line<br>break</p>", 20, "</p>"},
		{"not markup", "hello", 0, "element"},
	} {
		doc, err := dom.Parse([]byte(c.input))
		assert.Nil(t, doc, c.name)
		require.Error(t, err, c.name)
		t.Logf("%s: %v", c.name, err)
		var perr *dom.ParseError
		require.True(t, errors.As(err, &perr), c.name)
		assert.ErrorIs(t, err, dom.ErrSyntax, c.name)
		assert.Equal(t, c.offset, perr.Offset, c.name)
		assert.Contains(t, perr.Expected, c.expected, c.name)
	}
}

func TestTrailingContent(t *testing.T) {
	input := []byte("<html></html> trailing junk")
	_, err := dom.Parse(input)
	assert.NoError(t, err, "trailing content is ignored by default")

	_, err = dom.Parse(input, dom.RejectTrailing())
	assert.ErrorIs(t, err, dom.ErrTrailingContent)
	var perr *dom.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 14, perr.Offset)

	_, err = dom.Parse([]byte("<html></html>\n\n"), dom.RejectTrailing())
	assert.NoError(t, err, "trailing whitespace is always accepted")
}

func TestCloseTagMatching(t *testing.T) {
	input := []byte("<a><b>x</c></a>")
	doc, err := dom.Parse(input)
	require.NoError(t, err, "close tag names are unchecked by default")
	assert.Equal(t, "b", doc.Root.Children[0].TagName())

	_, err = dom.Parse(input, dom.MatchCloseTags())
	assert.ErrorIs(t, err, dom.ErrTagMismatch)
	var perr *dom.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 7, perr.Offset)

	_, err = dom.Parse([]byte("<a><b>x</c></a> junk"), dom.Strict())
	assert.ErrorIs(t, err, dom.ErrTagMismatch)
}

func TestComments(t *testing.T) {
	input := []byte("<foo> and a better <!-- a cool - comment--></foo>")
	_, err := dom.Parse(input)
	assert.ErrorIs(t, err, dom.ErrSyntax, "comments need SkipComments")

	doc, err := dom.Parse(input, dom.SkipComments())
	require.NoError(t, err)
	expected := dom.NewElement("foo", nil, dom.NewText("and a better "))
	if diff := cmp.Diff(expected, doc.Root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepNestingIsBounded(t *testing.T) {
	depth := 100000
	input := strings.Repeat("<d>", depth) + strings.Repeat("</d>", depth)
	_, err := dom.Parse([]byte(input))
	assert.ErrorIs(t, err, dom.ErrTooDeep)

	doc, err := dom.Parse([]byte(input), dom.MaxDepth(0))
	require.NoError(t, err)
	n, levels := doc.Root, 1
	for len(n.Children) > 0 {
		n = n.Children[0]
		levels++
	}
	assert.Equal(t, depth, levels)
}

func TestStyleText(t *testing.T) {
	input := `<head>
    <style type="text/css">
      .foo {
        color:red;
       }
    </style>
    </head>`
	doc, err := dom.Parse([]byte(input))
	require.NoError(t, err)
	style, ok := dom.FirstElementByTagName(doc.Root, "style").Get()
	require.True(t, ok)
	assert.Contains(t, style.TextContent(), "color:red;")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.html")
	markup := "<html><head><title>Title</title></head><body>some text</body></html>"
	require.NoError(t, os.WriteFile(path, []byte(markup), 0o644))

	doc, err := dom.Load(path)
	require.NoError(t, err)
	expected := &dom.Document{
		Root: dom.NewElement("html", nil,
			dom.NewElement("head", nil,
				dom.NewElement("title", nil, dom.NewText("Title"))),
			dom.NewElement("body", nil, dom.NewText("some text"))),
		BaseURL: path,
	}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := dom.Load(filepath.Join(dir, "missing.html"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var perr *fs.PathError
	assert.True(t, errors.As(err, &perr))

	path := filepath.Join(dir, "broken.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body></html>"), 0o644))
	_, err = dom.Load(path, dom.MatchCloseTags())
	assert.ErrorIs(t, err, dom.ErrTagMismatch)
	_, err = dom.Load(path)
	assert.ErrorIs(t, err, dom.ErrSyntax)
}

func TestParseReader(t *testing.T) {
	doc, err := dom.ParseReader(strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.Root.TextContent())

	cause := errors.New("connection reset")
	for _, r := range []io.Reader{
		iotest.ErrReader(cause),
		io.MultiReader(strings.NewReader("<p>h"), iotest.ErrReader(cause)),
	} {
		doc, err = dom.ParseReader(r)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, cause)
		var perr *dom.ParseError
		assert.False(t, errors.As(err, &perr), "read failures are not parse errors")
	}
}
