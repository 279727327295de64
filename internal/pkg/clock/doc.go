// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() directly, so business logic can be tested with a fake clock that
// returns a deterministic time.
package clock
