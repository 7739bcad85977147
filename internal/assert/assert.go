// Package assert provides a lightweight invariant check for internal
// programming errors (bitboard disjointness, zobrist drift, unmake
// mismatch). These are bugs, not user-facing errors, and are only
// checked when DEBUG is true.
package assert

import "fmt"

// DEBUG enables internal invariant checks. Leave false in release builds;
// set it to true to have state-machine bugs panic where they happen.
var DEBUG = false

// Assert panics with a formatted message when cond is false. Callers must
// guard with `if assert.DEBUG` so the format args are never evaluated in
// release builds.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
