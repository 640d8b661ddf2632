/*
Domdump parses a document and prints it in one of several formats.

Usage:

	domdump [flags] <file>

Flags may also be set from the environment, prefixed with DOMDUMP_
(e.g. DOMDUMP_FORMAT=dot).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
