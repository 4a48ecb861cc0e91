// Package restorefuncs contains test fixtures for the -restore-funcs
// flag, which registers third-party restore-returning functions.
package restorefuncs

import "github.com/example/scoped"

// ===== SHOULD NOT REPORT =====

// [GOOD]: registered function, deferred
func goodOpen() {
	done := scoped.Open()
	defer done()
}

// [GOOD]: registered method, deferred
func goodActivate() {
	var tr scoped.Tracker
	done := tr.Activate()
	defer done()
}

// ===== SHOULD REPORT =====

// [BAD]: registered function, discarded
func badOpenDiscarded() {
	scoped.Open() // want `restore function returned by scoped\.Open is discarded`
}

// [BAD]: registered method, never deferred
func badActivateNeverDeferred() {
	var tr scoped.Tracker
	done := tr.Activate() // want `restore function returned by scoped\.Tracker\.Activate is never deferred`
	_ = done
}
