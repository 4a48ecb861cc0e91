// Package scopeignore contains test fixtures for //parameterize:ignore
// directives.
package scopeignore

import "github.com/agrif/parameterize"

// ===== SHOULD NOT REPORT =====

// [GOOD]: ignore-all directive on the previous line
func ignoredAll() {
	//parameterize:ignore
	parameterize.Create(nil)
}

// [GOOD]: checker-specific directive on the same line
func ignoredDiscard() {
	parameterize.Create(nil) //parameterize:ignore discard
}

// [GOOD]: directive with a reason
func ignoredWithReason() {
	restore := parameterize.Create(nil) //parameterize:ignore defer - restore is invoked by a helper
	keep(restore)
}

func keep(f func()) {}

// ===== SHOULD REPORT =====

// [BAD]: ignore directive - completely unused
//
// A directive that suppresses nothing is reported as unused.
func unusedDirective() {
	//parameterize:ignore // want `unused parameterize:ignore directive`
	restore := parameterize.Create(nil)
	defer restore()
}

// [BAD]: ignore directive - unused checker-specific
func unusedChecker() {
	//parameterize:ignore defer // want `unused parameterize:ignore directive for checker\(s\): defer`
	restore := parameterize.Create(nil)
	defer restore()
}

// [BAD]: directive for one checker does not cover the other
func wrongChecker() {
	parameterize.Create(nil) //parameterize:ignore defer // want `restore function returned by parameterize\.Create is discarded` `unused parameterize:ignore directive for checker\(s\): defer`
}
