// Package parameterize provides dynamically scoped, goroutine-local
// bindings in the style of Scheme's parameter objects (SRFI 39).
//
// # Overview
//
// A dynamic binding is a value that can be overridden for the duration
// of a scope. The override is visible to everything called within the
// scope, across function boundaries, and disappears when the scope
// exits, even when the scope is left by a panic. Each goroutine has a
// fully independent chain of scopes.
//
// # Parameters
//
// The usual entry point is [Parameter], a typed handle on one binding:
//
//	var indent = parameterize.New("indent", 4)
//
//	n, err := indent.Get() // 4
//	err = indent.Set(8)    // overwrites the binding in place
//
// [Parameter.With] runs a function with the parameter overridden. The
// override is a scope-local shadow and cannot escape:
//
//	indent.With(2, func() error {
//		// indent.Get() == 2 here, and in everything called from here
//		return nil
//	})
//	// indent.Get() is back to its previous value
//
// # Scopes and the see-through write rule
//
// Only opening a scope creates a shadow. A plain Set inside a scope
// that does not own the key writes through to the nearest enclosing
// frame that does own it, falling back to the goroutine's root frame:
//
//	k := parameterize.NewKey("k")
//	restore := parameterize.Create(map[*parameterize.Key]any{other: 1})
//	defer restore()
//	parameterize.Set(k, 99) // lands outside this scope; survives restore
//
// Restore functions returned by [Create] and [Parameter.Parameterize]
// must be deferred immediately; the analyzer in the lint subpackage
// checks this. [With] and [Parameter.With] do it for you.
//
// # Goroutines
//
// Chains are per goroutine. Constructing a parameter binds its default
// only in the constructing goroutine; other goroutines get ErrUnbound
// from Get until they set or parameterize the value themselves. The
// goroutine-local backend can be swapped wholesale with [SetLocals]
// for embeddings that schedule work on something other than raw
// goroutines.
//
// # Key lifetime
//
// Binding keys are compared by identity and held weakly by root
// frames, so a root-level binding never keeps its key alive. When the
// last reference to a [Parameter] is dropped, its root entries become
// collectable and are pruned lazily.
package parameterize
