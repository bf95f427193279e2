// Package errutil holds the few error helpers shared by the command and the
// benchmark packages.
package errutil

import (
	"fmt"
)

// First returns the first non-nil error, typically a write error ahead of
// the Close error of the same file.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// FatalIf panics when err is set. The panic value wraps err, so a recover
// can still match it with errors.Is.
func FatalIf(err error) {
	if err != nil {
		panic(fmt.Errorf("fatal: %w", err))
	}
}

// Must panics with the formatted message unless cond holds.
func Must(cond bool, format string, msg ...any) {
	if !cond {
		panic(fmt.Sprintf(format, msg...))
	}
}
