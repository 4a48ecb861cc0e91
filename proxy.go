package parameterize

import (
	"fmt"
	"reflect"
)

// Proxy is a live view of a parameter's value. Every access re-reads
// the parameter through the calling goroutine's dynamic environment;
// nothing is cached, so a proxy held across scope boundaries always
// reflects the binding in force at the point of use.
type Proxy[T any] struct {
	p *Parameter[T]
}

// Proxy returns a live view of the parameter.
func (p *Parameter[T]) Proxy() *Proxy[T] {
	return &Proxy[T]{p: p}
}

// Value returns the parameter's current value.
func (px *Proxy[T]) Value() (T, error) {
	return px.p.Get()
}

// Field returns the named struct field of the current value,
// dereferencing a pointer value if needed.
func (px *Proxy[T]) Field(name string) (any, error) {
	v, err := px.p.Get()
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot select field %q on %T", name, v)
	}
	f := rv.FieldByName(name)
	if !f.IsValid() {
		return nil, fmt.Errorf("no field %q on %T", name, v)
	}
	return f.Interface(), nil
}

// CallMethod invokes the named method on the current value and returns
// its results. The arguments must match the method's signature; as
// with reflect.Value.Call, a mismatch panics.
func (px *Proxy[T]) CallMethod(name string, args ...any) ([]any, error) {
	v, err := px.p.Get()
	if err != nil {
		return nil, err
	}
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("no method %q on %T", name, v)
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := m.Call(in)
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}
