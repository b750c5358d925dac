// Package testutil contains common test utilities.
package testutil

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Recover calls f and returns the value passed to panic, or nil if f returns
// normally.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

// Set sets *p to v and restores the original value in the cleanup of c.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}
