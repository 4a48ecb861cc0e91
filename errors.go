package parameterize

import (
	"errors"
	"fmt"
)

// ErrUnbound is reported by Get and Delete when a key has no binding
// anywhere along the calling goroutine's scope chain. It is never
// silently defaulted; callers that want a fallback should check for it
// with errors.Is.
var ErrUnbound = errors.New("unbound key")

// ErrArity is reported by Parameter.Call when it is invoked with more
// than one argument.
var ErrArity = errors.New("call takes zero or one argument")

func unboundError(k *Key) error {
	return fmt.Errorf("%w: %s", ErrUnbound, k)
}
