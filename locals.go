package parameterize

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// Locals is the storage for the current scope-chain head of the
// calling execution unit. The default implementation keys state by
// goroutine; embeddings with a different notion of execution unit
// (worker pools, actor runtimes, test harnesses) can substitute their
// own with SetLocals. Implementations may return nil from Current for
// units that have never been touched; the package installs a fresh
// root frame on first use.
type Locals interface {
	Current() *Environment
	SetCurrent(*Environment)
}

// GoroutineLocals is the default Locals backend. It keeps one chain
// head per goroutine id and is safe for concurrent use.
//
// Go offers no goroutine-exit hook, so a slot is not released
// automatically when its goroutine ends. Long-lived pool workers that
// are done with dynamic bindings can call Forget to drop theirs.
type GoroutineLocals struct {
	envs sync.Map // goroutine id -> *Environment
}

// Current returns the calling goroutine's chain head, or nil if it has
// never been set.
func (g *GoroutineLocals) Current() *Environment {
	if v, ok := g.envs.Load(goroutineID()); ok {
		return v.(*Environment)
	}
	return nil
}

// SetCurrent installs env as the calling goroutine's chain head.
func (g *GoroutineLocals) SetCurrent(env *Environment) {
	g.envs.Store(goroutineID(), env)
}

// Forget drops the calling goroutine's slot entirely, root frame
// included. The next access starts over with a fresh root.
func (g *GoroutineLocals) Forget() {
	g.envs.Delete(goroutineID())
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the current goroutine's id out of the
// runtime.Stack header line, which reads "goroutine 123 [running]:".
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		panic("parameterize: malformed runtime.Stack header")
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		panic("parameterize: malformed runtime.Stack header: " + err.Error())
	}
	return id
}

var locals Locals = &GoroutineLocals{}

// SetLocals replaces the Locals backend for the whole process. The
// calling goroutine's current chain is carried over into the new
// backend so bindings made before the swap stay visible.
//
// The swap is meant to happen once, during startup, before any other
// goroutine touches the dynamic environment; it is not synchronized
// against concurrent use.
func SetLocals(l Locals) {
	if head := locals.Current(); head != nil {
		l.SetCurrent(head)
	}
	locals = l
}
