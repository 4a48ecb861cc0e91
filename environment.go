package parameterize

import "weak"

// store is the key/value storage owned by a single frame.
type store interface {
	lookup(k *Key) (any, bool)
	insert(k *Key, v any)
	remove(k *Key)
	keys() []*Key
}

// strongStore backs non-root frames. These are bounded by scope
// lifetime and released in full on scope exit, so plain ownership of
// the keys is fine.
type strongStore map[*Key]any

func (s strongStore) lookup(k *Key) (any, bool) {
	v, ok := s[k]
	return v, ok
}

func (s strongStore) insert(k *Key, v any) {
	s[k] = v
}

func (s strongStore) remove(k *Key) {
	delete(s, k)
}

func (s strongStore) keys() []*Key {
	ks := make([]*Key, 0, len(s))
	for k := range s {
		ks = append(ks, k)
	}
	return ks
}

// weakStore backs root frames. Keys are held through weak pointers so
// a root binding never keeps its key alive; entries whose key has been
// collected are pruned lazily whenever the store is touched.
type weakStore map[weak.Pointer[Key]]any

func (s weakStore) lookup(k *Key) (any, bool) {
	v, ok := s[weak.Make(k)]
	return v, ok
}

func (s weakStore) insert(k *Key, v any) {
	s.prune()
	s[weak.Make(k)] = v
}

func (s weakStore) remove(k *Key) {
	delete(s, weak.Make(k))
}

func (s weakStore) keys() []*Key {
	ks := make([]*Key, 0, len(s))
	for wp := range s {
		k := wp.Value()
		if k == nil {
			delete(s, wp)
			continue
		}
		ks = append(ks, k)
	}
	return ks
}

func (s weakStore) prune() {
	for wp := range s {
		if wp.Value() == nil {
			delete(s, wp)
		}
	}
}

// Environment is one frame of a scope chain: a local binding store
// plus a parent frame. Frames form a tree rooted at a goroutine's root
// frame; only the chain from the current head to the root is reachable
// at any moment.
//
// Environments are not safe for concurrent use. They never need to be:
// every chain belongs to a single goroutine.
type Environment struct {
	data   store
	parent *Environment
}

// NewEnvironment returns a frame seeded with bindings, chained to
// parent. A nil parent makes the frame a root for the write rule, but
// with strong key ownership; for a long-lived root use
// NewRootEnvironment instead.
func NewEnvironment(bindings map[*Key]any, parent *Environment) *Environment {
	data := make(strongStore, len(bindings))
	for k, v := range bindings {
		data[k] = v
	}
	return &Environment{data: data, parent: parent}
}

// NewRootEnvironment returns an empty parentless frame whose store
// holds keys weakly. Every goroutine's implicit base frame is one of
// these.
func NewRootEnvironment() *Environment {
	return &Environment{data: make(weakStore)}
}

// Get returns the value bound to k in this frame or the nearest
// ancestor that binds it. It reports ErrUnbound when no frame on the
// chain does.
func (e *Environment) Get(k *Key) (any, error) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.data.lookup(k); ok {
			return v, nil
		}
	}
	return nil, unboundError(k)
}

// Has reports whether k is bound anywhere along the chain.
func (e *Environment) Has(k *Key) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.data.lookup(k); ok {
			return true
		}
	}
	return false
}

// Set binds k to v. The write lands in this frame only if the frame
// already owns k or is a root; otherwise it sees through to the
// nearest ancestor owning k, falling back to the root. Only opening a
// new scope creates a shadow, never Set.
func (e *Environment) Set(k *Key, v any) {
	for f := e; ; f = f.parent {
		if _, ok := f.data.lookup(k); ok || f.parent == nil {
			f.data.insert(k, v)
			return
		}
	}
}

// Delete removes the binding for k from the frame that owns it, with
// the same precedence as Set. It reports ErrUnbound when no frame on
// the chain binds k.
func (e *Environment) Delete(k *Key) error {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.data.lookup(k); ok {
			f.data.remove(k)
			return nil
		}
	}
	return unboundError(k)
}

// Keys returns every visible key: this frame's own keys first, then
// ancestor keys not already shadowed, walking the chain iteratively.
func (e *Environment) Keys() []*Key {
	var out []*Key
	seen := make(map[*Key]bool)
	for f := e; f != nil; f = f.parent {
		for _, k := range f.data.keys() {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// Len returns the number of distinct visible keys, consistent with Keys.
func (e *Environment) Len() int {
	return len(e.Keys())
}
