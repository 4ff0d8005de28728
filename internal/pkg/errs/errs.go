package errs

import (
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

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr to err so errors.Is(err, markErr) holds while the
// original cause remains inspectable. The marker joins the unwrap chain
// rather than using cr.Mark, whose marker only cockroachdb's own errors.Is
// can see.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string {
	return m.cause.Error()
}

func (m *marked) Unwrap() []error {
	return []error{m.cause, m.mark}
}
