package dom

const (
	doctype      = "<!DOCTYPE html>"
	metaPrefix   = "<meta "
	commentStart = "<!--"
	commentEnd   = "-->"
)

// parser applies the document grammar to a scanner.
type parser struct {
	*scanner
	cfg config
}

// --- Attributes ------------------------------------------------------------

// attribute := space key '=' '"' value '"'
func (p *parser) attribute() (key string, value string, ok bool) {
	start := p.pos
	p.skipSpace()
	if key, ok = p.alphabetic("attribute name"); ok {
		if ok = p.char('='); ok {
			value, ok = p.quoted()
		}
	}
	if !ok {
		p.pos = start
		return "", "", false
	}
	return key, value, true
}

// attributes := attribute*
//
// Duplicate keys silently resolve to the last value.
func (p *parser) attributes() AttrMap {
	attrs := AttrMap{}
	for {
		key, value, ok := p.attribute()
		if !ok {
			return attrs
		}
		attrs[key] = value
	}
}

// --- Tags ------------------------------------------------------------------

// openTag := space '<' name attributes '>'
func (p *parser) openTag() (name string, attrs AttrMap, ok bool) {
	start := p.pos
	p.skipSpace()
	if p.at("<") {
		p.pos++
		if name, ok = p.alphanumeric("tag name"); ok {
			attrs = p.attributes()
			ok = p.char('>')
		}
	}
	if !ok {
		p.pos = start
		return "", nil, false
	}
	return name, attrs, true
}

// closeTag := space '<' '/' name '>'
func (p *parser) closeTag() (name string, ok bool) {
	start := p.pos
	p.skipSpace()
	if p.at("<") {
		p.pos++
		if ok = p.char('/'); ok {
			if name, ok = p.alphanumeric("tag name"); ok {
				ok = p.char('>')
			}
		}
	}
	if !ok {
		p.pos = start
		return "", false
	}
	return name, true
}

// metaTag := "<meta " attributes '>'
func (p *parser) metaTag() (*Node, bool) {
	if !p.at(metaPrefix) {
		return nil, false
	}
	start := p.pos
	p.pos += len(metaPrefix)
	attrs := p.attributes()
	if !p.char('>') {
		p.pos = start
		return nil, false
	}
	return NewMeta(attrs), true
}

// text := [^<]+
func (p *parser) text() (*Node, bool) {
	start := p.pos
	for !p.eof() && p.buf[p.pos] != '<' {
		p.pos++
	}
	if p.pos == start {
		return nil, false
	}
	return NewText(string(p.buf[start:p.pos])), true
}

// comment := "<!--" .* "-->"
func (p *parser) comment() bool {
	if !p.at(commentStart) {
		return false
	}
	start := p.pos
	for p.pos += len(commentStart); !p.eof(); p.pos++ {
		if p.at(commentEnd) {
			p.pos += len(commentEnd)
			return true
		}
	}
	p.expect("\"" + commentEnd + "\"")
	p.pos = start
	return false
}

// --- Elements --------------------------------------------------------------

// element := open_tag space (meta | text | element)* space close_tag
//
// Nested elements are kept on an explicit stack instead of recursing. A child
// element is linked into its parent as soon as its open tag is read; if
// anything fails later, the whole tree is dropped anyway.
func (p *parser) element() (*Node, error) {
	name, attrs, ok := p.openTag()
	if !ok {
		p.expect("element")
		return nil, p.syntaxError()
	}
	root := NewElement(name, attrs)
	stack := []*Node{root}
	p.skipSpace()
	for {
		top := stack[len(stack)-1]
		if meta, ok := p.metaTag(); ok {
			top.Children = append(top.Children, meta)
			continue
		}
		if p.cfg.skipComments && p.comment() {
			continue
		}
		if text, ok := p.text(); ok {
			top.Children = append(top.Children, text)
			continue
		}
		childPos := p.pos
		if name, attrs, ok := p.openTag(); ok {
			if p.cfg.maxDepth > 0 && len(stack) >= p.cfg.maxDepth {
				tracer().Infof("element <%s> exceeds nesting depth %d", name, p.cfg.maxDepth)
				return nil, newParseError(p.buf, childPos, ErrTooDeep)
			}
			child := NewElement(name, attrs)
			top.Children = append(top.Children, child)
			stack = append(stack, child)
			p.skipSpace()
			continue
		}
		// no more children: top must be closed now
		openName := top.TagName()
		p.skipSpace()
		closePos := p.pos
		closeName, ok := p.closeTag()
		if !ok {
			p.pos = closePos
			p.expect("</" + openName + ">")
			return nil, p.syntaxError()
		}
		if p.cfg.matchCloseTags && closeName != openName {
			return nil, newParseError(p.buf, closePos, ErrTagMismatch, "</"+openName+">")
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return root, nil
		}
	}
}

// --- Document --------------------------------------------------------------

// document := space? "<!DOCTYPE html>"? space element
func (p *parser) document() (*Document, error) {
	p.skipSpace()
	if !p.literal(doctype) {
		tracer().Debugf("no doctype")
	}
	root, err := p.element()
	if err != nil {
		return nil, err
	}
	if p.cfg.rejectTrailing {
		p.skipSpace()
		if !p.eof() {
			return nil, newParseError(p.buf, p.pos, ErrTrailingContent, "end of input")
		}
	}
	return &Document{Root: root}, nil
}
