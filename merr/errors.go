package merr

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Define leaf errors here.
// Name: Err + error name
var (
	// Input shape
	ErrTypeMismatch  = newArrayError("type mismatch", 100)
	ErrEmptySequence = newArrayError("empty sequence", 101)

	// Container access
	ErrIndexOutOfBounds = newArrayError("index out of bounds", 200)

	// Walkthrough
	ErrSectionNotFound = newArrayError("section not found", 300)

	// Configuration
	ErrInvalidConfig = newArrayError("invalid config", 400)

	// Do NOT export this, keep only for converting unknown errors
	errUnexpected = newArrayError("unexpected error", (1<<16)-1)
)

type arrayError struct {
	msg     string
	errCode int32
}

func newArrayError(msg string, code int32) arrayError {
	return arrayError{
		msg:     msg,
		errCode: code,
	}
}

func (e arrayError) code() int32 {
	return e.errCode
}

func (e arrayError) Error() string {
	return e.msg
}

func (e arrayError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(arrayError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

// Code returns the code of the leaf error err wraps, 0 for nil.
func Code(err error) int32 {
	if err == nil {
		return 0
	}
	var cause arrayError
	if errors.As(err, &cause) {
		return cause.code()
	}
	return errUnexpected.code()
}

// joinedErrors carries every failure of one batch of checks, such as each
// unknown section name passed to a single run.
type joinedErrors struct {
	errs []error
}

// Unwrap exposes all causes so errors.Is and errors.As visit each of them.
func (e joinedErrors) Unwrap() []error {
	return e.errs
}

// Error lists the causes in the order they were reported, separated by "; ".
func (e joinedErrors) Error() string {
	msgs := lo.Map(e.errs, func(err error, _ int) string { return err.Error() })
	return strings.Join(msgs, "; ")
}

func (e joinedErrors) Is(target error) bool {
	return lo.ContainsBy(e.errs, func(err error) bool { return errors.Is(err, target) })
}

// Combine reports every non-nil error from a batch of checks at once, so a
// caller passing several bad section names learns about all of them. It
// returns nil when nothing failed and the error itself when only one did.
func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return joinedErrors{errs: errs}
}

// WrapErrTypeMismatch reports that param did not have the expected type.
func WrapErrTypeMismatch(param string, expected string, actual any) error {
	return errors.Wrapf(ErrTypeMismatch, "%s must be %s, got %T", param, expected, actual)
}

func WrapErrEmptySequence(param string) error {
	return errors.Wrapf(ErrEmptySequence, "%s must hold at least one element", param)
}

func WrapErrIndexOutOfBounds(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index=%d length=%d", index, length)
}

func WrapErrSectionNotFound(name string) error {
	return errors.Wrapf(ErrSectionNotFound, "section=%s", name)
}

func WrapErrInvalidConfig(err error, msg string) error {
	return errors.Wrapf(ErrInvalidConfig, "%s: %v", msg, err)
}
