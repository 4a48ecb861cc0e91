// Package discardonly contains test fixtures for running with the
// defer checker disabled (-defer=false).
package discardonly

import "github.com/agrif/parameterize"

// [BAD]: discard is still reported
func badDiscarded() {
	parameterize.Create(nil) // want `restore function returned by parameterize\.Create is discarded`
}

// [GOOD]: never-deferred is not reported while disabled
func notDeferred() {
	restore := parameterize.Create(nil)
	_ = restore
}

// [GOOD]: deferred open is not reported while disabled
func deferredOpen() {
	defer parameterize.Create(nil)
}
