// Package errs thinly wraps cockroachdb/errors so the rest of the codebase
// never imports it directly.
package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark pins markErr onto err as a second identity: the standard library's
// errors.Is matches both the mark and the original cause. Usecases use it to
// attach a sentinel to an infra error without losing the chain. Both errors
// go through %w because cockroachdb's own Mark records the mark outside the
// Unwrap chain, where stdlib errors.Is cannot see it.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return fmt.Errorf("%w: %w", markErr, err)
}
