package dom

import (
	"bytes"
)

// scanner holds the input and the current position. Grammar rules move pos
// forward on success and reset it on failure, so every rule may be tried as
// one alternative of an ordered choice.
//
// For error reporting the scanner remembers the furthest position at which a
// terminal failed to match, together with what was expected there. Positions
// before it are uninteresting: some alternative already got further.
type scanner struct {
	buf      []byte
	pos      int
	furthest int
	expected []string
}

func newScanner(buf []byte) *scanner {
	return &scanner{buf: buf, furthest: -1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.buf)
}

// expect records that the grammar would have accepted what at the current
// position.
func (s *scanner) expect(what string) {
	switch {
	case s.pos > s.furthest:
		s.furthest = s.pos
		s.expected = append(s.expected[:0], what)
	case s.pos == s.furthest:
		for _, e := range s.expected {
			if e == what {
				return
			}
		}
		s.expected = append(s.expected, what)
	}
}

// syntaxError reports the furthest failure.
func (s *scanner) syntaxError() *ParseError {
	pos := s.furthest
	if pos < 0 {
		pos = s.pos
	}
	expected := make([]string, len(s.expected))
	copy(expected, s.expected)
	return newParseError(s.buf, pos, ErrSyntax, expected...)
}

// --- Lexical primitives ----------------------------------------------------

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || '0' <= c && c <= '9'
}

// skipSpace consumes zero or more whitespace characters. It never fails.
func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// char consumes c.
func (s *scanner) char(c byte) bool {
	if !s.eof() && s.buf[s.pos] == c {
		s.pos++
		return true
	}
	s.expect("'" + string(c) + "'")
	return false
}

// at checks for prefix at the current position without consuming it or
// recording an expectation.
func (s *scanner) at(prefix string) bool {
	return bytes.HasPrefix(s.buf[s.pos:], []byte(prefix))
}

// literal consumes lit.
func (s *scanner) literal(lit string) bool {
	if s.at(lit) {
		s.pos += len(lit)
		return true
	}
	s.expect("\"" + lit + "\"")
	return false
}

// run consumes one or more bytes of a character class.
func (s *scanner) run(class func(byte) bool, what string) (string, bool) {
	start := s.pos
	for !s.eof() && class(s.buf[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.expect(what)
		return "", false
	}
	return string(s.buf[start:s.pos]), true
}

// alphanumeric consumes a run of ASCII letters and digits.
func (s *scanner) alphanumeric(what string) (string, bool) {
	return s.run(isAlphanumeric, what)
}

// alphabetic consumes a run of ASCII letters.
func (s *scanner) alphabetic(what string) (string, bool) {
	return s.run(isAlpha, what)
}

// quoted consumes a double-quoted string. Its content may not contain a
// backslash; it may be empty.
func (s *scanner) quoted() (string, bool) {
	start := s.pos
	if !s.char('"') {
		return "", false
	}
	v := s.pos
	for !s.eof() && s.buf[s.pos] != '"' && s.buf[s.pos] != '\\' {
		s.pos++
	}
	value := string(s.buf[v:s.pos])
	if !s.char('"') {
		s.pos = start
		return "", false
	}
	return value, true
}
