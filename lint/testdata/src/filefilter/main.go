// Package filefilter contains test fixtures for generated-file
// skipping. generated.go carries violations that must not be reported.
package filefilter

import "github.com/agrif/parameterize"

func handwritten() {
	restore := parameterize.Create(nil)
	defer restore()
}
