package parameterize

import (
	"fmt"
	"reflect"
)

// Converter coerces a value before it is stored. It runs on every set,
// including the one performed at construction.
type Converter[T any] func(any) (T, error)

// Parameter is a typed handle on one dynamic binding. The zero value
// is not usable; construct parameters with New or NewConverted.
//
// A parameter's binding is per goroutine: construction binds the
// default only in the constructing goroutine's environment, and Get in
// another goroutine reports ErrUnbound until that goroutine sets or
// parameterizes the value itself.
type Parameter[T any] struct {
	key  *Key
	conv Converter[T]
}

// New returns a parameter bound to def in the calling goroutine's
// current environment. Values passed to Set must already be a T.
func New[T any](name string, def T) *Parameter[T] {
	p := &Parameter[T]{key: NewKey(name), conv: assertTo[T]}
	Set(p.key, def)
	return p
}

// NewConverted returns a parameter whose converter runs on every set.
// The converter is applied to def first; construction fails if it
// rejects the default.
func NewConverted[T any](name string, def any, conv Converter[T]) (*Parameter[T], error) {
	v, err := conv(def)
	if err != nil {
		return nil, err
	}
	p := &Parameter[T]{key: NewKey(name), conv: conv}
	Set(p.key, v)
	return p, nil
}

// assertTo is the default converter: the incoming value must already
// be a T. A nil value is accepted for nilable T.
func assertTo[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	if v == nil && canBeNil(reflect.TypeFor[T]()) {
		return zero, nil
	}
	return zero, fmt.Errorf("cannot use %v (%T) as %v", v, v, reflect.TypeFor[T]())
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// Key returns the parameter's binding key, for use with the
// package-level environment operations.
func (p *Parameter[T]) Key() *Key {
	return p.key
}

// Get returns the parameter's current value in the calling goroutine.
func (p *Parameter[T]) Get() (T, error) {
	v, err := Get(p.key)
	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := v.(T)
	return t, nil
}

// Set converts v and writes it by the see-through rule: the innermost
// enclosing scope that owns the binding is mutated, not necessarily
// the innermost scope. Converter errors are returned as-is.
func (p *Parameter[T]) Set(v any) error {
	t, err := p.conv(v)
	if err != nil {
		return err
	}
	Set(p.key, t)
	return nil
}

// Call is the call-style sugar: with no arguments it reads the
// parameter, with one argument it sets it and returns the stored
// (post-converter) value, and with more it reports ErrArity.
func (p *Parameter[T]) Call(args ...any) (any, error) {
	switch len(args) {
	case 0:
		v, err := p.Get()
		if err != nil {
			return nil, err
		}
		return v, nil
	case 1:
		t, err := p.conv(args[0])
		if err != nil {
			return nil, err
		}
		Set(p.key, t)
		return t, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrArity, len(args))
	}
}

// Parameterize opens a new scope in which the parameter is bound to v.
// The new frame owns the binding, so any Set inside the scope stays a
// scope-local shadow and the prior value comes back exactly on
// restore. The restore function must be deferred immediately:
//
//	restore, err := p.Parameterize(v)
//	if err != nil {
//		return err
//	}
//	defer restore()
//
// Prefer With unless the scope has to span a whole function body.
func (p *Parameter[T]) Parameterize(v any) (restore func(), err error) {
	t, err := p.conv(v)
	if err != nil {
		return nil, err
	}
	return Create(map[*Key]any{p.key: t}), nil
}

// With runs body with the parameter bound to v, restoring the prior
// value on every exit path, including a panic propagating out of body.
func (p *Parameter[T]) With(v any, body func() error) error {
	restore, err := p.Parameterize(v)
	if err != nil {
		return err
	}
	defer restore()
	return body()
}
