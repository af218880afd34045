// Package cancel provides the cancellation token consumed by the core
// (spec section 6): an object with a pollable "cancelled" predicate,
// checked at well-defined suspension points rather than wired through
// context.Context cancellation chains. The atomic.Bool-backed flag
// mirrors the "running" flag of gospel/concurrent.Dispatcher.
package cancel

import "sync/atomic"

// Token is a pollable cancellation flag. The zero value is a valid,
// not-yet-cancelled token.
type Token struct {
	flag atomic.Bool
}

// New returns a fresh, not-yet-cancelled token.
func New() *Token {
	return new(Token)
}

// Cancel trips the token. Safe to call more than once or concurrently.
func (t *Token) Cancel() {
	t.flag.Store(true)
}

// Cancelled reports whether the token has been tripped.
func (t *Token) Cancelled() bool {
	return t.flag.Load()
}
