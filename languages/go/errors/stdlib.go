package errors

import (
	"fmt"

	"github.com/gostdlib/base/errors"
)

// Wrappers for the stdlib errors functions, so packages in this module only import one errors package.

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats an error. Use %w to wrap one of the sentinel errors of a package.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so, sets
// target to that error value and returns true.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors. Any nil error values are discarded.
func Join(err ...error) error {
	return errors.Join(err...)
}
