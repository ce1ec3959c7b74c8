// Package stub replaces package-level values in tests.
package stub

import "testing"

// Replace replaces the given value for the duration of the test.
func Replace[V any](dst *V, val V) (restore func()) {
	old := *dst
	*dst = val
	return func() {
		*dst = old
	}
}

// Set is like Replace, but restores the old value when t finishes.
// Tests that call it must not run in parallel.
func Set[V any](t testing.TB, dst *V, val V) {
	t.Cleanup(Replace(dst, val))
}
