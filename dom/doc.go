/*
Package dom parses a small subset of HTML into an in-memory document tree.

Status

Early draft—API may change frequently. Please stay patient.

Overview

The tree produced by this package is the contract between markup and every
later stage of the engine (styling, layout, rendering). Those stages only ever
read it. A document is built atomically by one call to Parse or Load and is
never modified afterwards, with the single exception of Document.BaseURL,
which Load sets to the path the markup was read from.

The accepted grammar is deliberately narrow:

   document  := space? "<!DOCTYPE html>"? space element
   element   := open-tag space ( meta | text | element )* space close-tag
   open-tag  := space "<" name attribute* ">"
   close-tag := space "<" "/" name ">"
   meta      := "<meta " attribute* ">"
   attribute := space key "=" '"' value '"'

Names are runs of ASCII letters and digits, attribute keys are runs of ASCII
letters only (no digits, no hyphens). Values may contain any byte except a
backslash or a double quote. Text is every run of bytes not containing '<',
taken verbatim: no entity decoding, no whitespace collapsing. The only void
element is <meta …>; every other element needs a close tag.

The grammar is lenient in three documented ways: the name of a close tag is not
compared with the name of its open tag, duplicate attribute keys resolve to the
last value, and bytes after the root element are ignored. Options
MatchCloseTags and RejectTrailing turn the first and the last of these into
errors.

Parsing is all-or-nothing. On malformed input no partial tree is returned;
instead clients get a *ParseError carrying the byte offset (plus line and
column) and a description of what the grammar expected there.

Nesting is handled with an explicit stack of open elements, not by recursion,
and the depth of that stack is limited (see MaxDepth). Hostile input therefore
cannot exhaust the goroutine stack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minidom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.dom")
}
