// Package scope contains test fixtures for the scope restore checkers.
// This file covers correct usage; see evil.go for violations.
package scope

import "github.com/agrif/parameterize"

var verbose = parameterize.New("verbose", false)

// ===== SHOULD NOT REPORT =====

// [GOOD]: restore deferred immediately
func goodCreateDeferred() {
	restore := parameterize.Create(nil)
	defer restore()
}

// [GOOD]: restore deferred after the error check
func goodParameterizeDeferred() error {
	restore, err := verbose.Parameterize(true)
	if err != nil {
		return err
	}
	defer restore()
	return nil
}

// [GOOD]: var declaration form
func goodVarDecl() {
	var restore = parameterize.Create(nil)
	defer restore()
}

// [GOOD]: scoped helpers need no restore handling
func goodWith() {
	_ = parameterize.With(nil, func() error { return nil })
	_ = verbose.With(true, func() error { return nil })
}

// [GOOD]: unrelated niladic functions are not restore functions
func goodUnrelated() {
	cleanup := makeCleanup()
	cleanup()
}

func makeCleanup() func() { return func() {} }
