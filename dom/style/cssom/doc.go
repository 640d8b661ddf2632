/*
Package cssom defines the interface between parsed documents and stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

Styling is not done by this module. Stages further down the pipeline combine
a document tree with one or more stylesheets; this package only fixes the
vocabulary they share. CSS handling is de-coupled by introducing the
interfaces StyleSheet and Rule. A concrete implementation, backed by
github.com/aymerick/douceur, may be found in sub-package douceuradapter,
together with a function collecting the stylesheets embedded in a document
with <style> elements.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'minidom.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.cssom")
}
