package dom

import (
	"fmt"
	"io"
	"os"
)

// Parse parses a complete document from buf. The returned document has an
// empty BaseURL.
//
// If buf does not conform to the grammar, Parse returns a *ParseError and no
// document.
func Parse(buf []byte, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	tracer().Debugf("parsing %d bytes of markup", len(buf))
	p := &parser{scanner: newScanner(buf), cfg: cfg}
	doc, err := p.document()
	if err != nil {
		tracer().Infof("%v", err)
		return nil, err
	}
	return doc, nil
}

// ParseReader reads r until EOF and parses the content.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot read markup: %w", err)
	}
	return Parse(buf, opts...)
}

// Load reads and parses the file at path. BaseURL of the resulting document
// is set to path.
//
// I/O errors are returned wrapped (the underlying *fs.PathError remains
// accessible with errors.As), grammar errors as a *ParseError.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("cannot open %s: %v", path, err)
		return nil, fmt.Errorf("dom: cannot load document: %w", err)
	}
	defer f.Close()
	doc, err := ParseReader(f, opts...)
	if err != nil {
		return nil, err
	}
	doc.BaseURL = path
	return doc, nil
}
