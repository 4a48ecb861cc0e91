package parameterize

// currentHead returns the calling execution unit's chain head,
// installing a fresh weak-keyed root on first touch.
func currentHead() *Environment {
	head := locals.Current()
	if head == nil {
		head = NewRootEnvironment()
		locals.SetCurrent(head)
	}
	return head
}

// Get returns the value bound to k in the calling goroutine's dynamic
// environment. It reports ErrUnbound when nothing on the chain binds k.
func Get(k *Key) (any, error) {
	return currentHead().Get(k)
}

// Set binds k to v in the calling goroutine's dynamic environment,
// following the see-through write rule: the innermost frame owning k
// is updated, or the root if none does.
func Set(k *Key, v any) {
	currentHead().Set(k, v)
}

// Delete removes the innermost binding of k, with the same precedence
// as Set. It reports ErrUnbound when nothing on the chain binds k.
func Delete(k *Key) error {
	return currentHead().Delete(k)
}

// Has reports whether k is bound in the calling goroutine's dynamic
// environment.
func Has(k *Key) bool {
	return currentHead().Has(k)
}

// Keys returns every key visible in the calling goroutine's dynamic
// environment, innermost bindings first.
func Keys() []*Key {
	return currentHead().Keys()
}

// Len returns the number of distinct keys visible in the calling
// goroutine's dynamic environment.
func Len() int {
	return currentHead().Len()
}

// Create pushes a new scope frame seeded with bindings onto the
// calling goroutine's chain and returns the function that restores the
// previous head. The restore function must be deferred immediately:
//
//	restore := parameterize.Create(bindings)
//	defer restore()
//
// Restoration is unconditional; whatever was set in or through the new
// frame in between, the previous head comes back exactly. Calling
// restore out of scope-entry order is undefined. Prefer With unless
// the scope has to span a whole function body.
func Create(bindings map[*Key]any) (restore func()) {
	prev := currentHead()
	locals.SetCurrent(NewEnvironment(bindings, prev))
	return func() {
		locals.SetCurrent(prev)
	}
}

// With runs body inside a new scope frame seeded with bindings. The
// previous head is restored on every exit path, including a panic
// propagating out of body.
func With(bindings map[*Key]any, body func() error) error {
	restore := Create(bindings)
	defer restore()
	return body()
}
