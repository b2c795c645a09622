// Command sitecalc is a command-line front end for the site-response
// calculations: ground classification of a layer profile, site-factor lookup,
// design spectra and the built-in reference tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
