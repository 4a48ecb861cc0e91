package scope

import "github.com/agrif/parameterize"

// ===== SHOULD REPORT =====

// [BAD]: result dropped on the floor
func badDiscarded() {
	parameterize.Create(nil) // want `restore function returned by parameterize\.Create is discarded`
}

// [BAD]: result assigned to blank
func badBlank() {
	_ = parameterize.Create(nil) // want `restore function returned by parameterize\.Create is discarded`
}

// [BAD]: tuple assignment with a blank restore slot
func badBlankParameterize() error {
	_, err := verbose.Parameterize(true) // want `restore function returned by parameterize\.Parameter\.Parameterize is discarded`
	return err
}

// [BAD]: restore captured but never deferred
func badNeverDeferred() {
	restore := parameterize.Create(nil) // want `restore function returned by parameterize\.Create is never deferred`
	_ = restore
}

// [BAD]: parameterize restore captured but never deferred
func badParameterizeNeverDeferred() error {
	restore, err := verbose.Parameterize(true) // want `restore function returned by parameterize\.Parameter\.Parameterize is never deferred`
	if err != nil {
		return err
	}
	_ = restore
	return nil
}

// [BAD]: restore deferred only inside a nested literal
//
// The closure runs and restores immediately, long before the caller
// means to leave the scope.
func badDeferredInClosure() {
	restore := parameterize.Create(nil) // want `restore function returned by parameterize\.Create is never deferred`
	func() {
		defer restore()
	}()
}

// [BAD]: the scope-opening call itself is deferred
//
// This opens the scope at function exit instead of now.
func badDeferredOpen() {
	defer parameterize.Create(nil) // want `parameterize\.Create itself is deferred; call it now and defer the returned restore function`
}
