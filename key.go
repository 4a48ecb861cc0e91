package parameterize

import "fmt"

// Key is an identity-based binding key. Two keys are the same binding
// if and only if they are the same *Key; the name is only used in
// error messages and String output.
//
// Root frames hold keys weakly, so keeping a value bound at the root
// does not keep the key reachable.
type Key struct {
	name string
}

// NewKey returns a fresh key. The name does not need to be unique.
func NewKey(name string) *Key {
	return &Key{name: name}
}

func (k *Key) String() string {
	if k.name == "" {
		return fmt.Sprintf("key(%p)", k)
	}
	return k.name
}
