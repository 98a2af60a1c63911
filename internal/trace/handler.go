package trace

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyRegistered is returned by RegisterHandler when a handler is
// already installed. The Rust source (original_source/src/io.rs) silently
// ignores a second registration via a OnceLock; this implementation
// rejects it instead, so a caller cannot mistakenly believe it replaced the
// handler (spec 9's "must not replace" requirement, made explicit rather
// than silent).
var ErrAlreadyRegistered = errors.New("trace: a handler is already registered")

// Handler receives every emitted Event.
type Handler interface {
	Handle(Event) error
}

var (
	mu       sync.Mutex
	handler  Handler
	hasOne   bool
)

// RegisterHandler installs the process-wide event handler. It is one-shot:
// a second call returns ErrAlreadyRegistered without touching the existing
// handler.
func RegisterHandler(h Handler) error {
	mu.Lock()
	defer mu.Unlock()
	if hasOne {
		return ErrAlreadyRegistered
	}
	handler, hasOne = h, true
	return nil
}

// Reset clears the registered handler, so a new one can be installed. Most
// callers never need this — RegisterHandler is meant to be called once per
// process — but a long-lived process that replays more than one scenario in
// sequence (cmd/justact run --watch) needs to swap handlers between runs.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	handler, hasOne = nil, false
}

// ResetForTest is Reset under the name package tests use to register a
// fresh handler per test case.
func ResetForTest() { Reset() }

// Emit dispatches e to the registered handler. It panics if no handler was
// registered, mirroring io.rs's panic-on-unregistered-access: this is a
// wiring bug (the runtime must register a handler before running), not a
// recoverable runtime condition.
func Emit(e Event) error {
	mu.Lock()
	h, ok := handler, hasOne
	mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("trace: no handler registered; call RegisterHandler first (event kind %s)", e.EventKind()))
	}
	return h.Handle(e)
}
