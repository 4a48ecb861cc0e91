// Command parameterizelint is a linter that checks scope restore
// hygiene in code using parameterize.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/agrif/parameterize/lint"
)

func main() {
	singlechecker.Main(lint.Analyzer)
}
