package result

import (
	"errors"

	"github.com/ib-77/fpkit/pkg/fp"
)

// Validate fails the input with errMsg when check reports it invalid.
func Validate[S any](input Result[error, S], check func(in S) (valid bool, errMsg string)) Result[error, S] {
	if input.isSuccess {
		if valid, errMsg := check(input.success); !valid {
			return Failure[S](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every check against a successful input and joins the
// reported errors in check order. With breakOnError it stops at the first
// failing check.
func ValidateAll[S any](input Result[error, S], breakOnError bool, checks ...func(in S) error) Result[error, S] {
	if !input.isSuccess || len(checks) == 0 {
		return input
	}

	var errs []error
	for _, check := range checks {
		err := check(input.success)
		if fp.IsNil(err) {
			continue
		}

		errs = append(errs, fp.GetErrors(err)...)
		if breakOnError {
			break
		}
	}

	if len(errs) == 0 {
		return input
	}
	return Failure[S](errors.Join(errs...))
}

func FailOnError[S any](input Result[error, S], maybeErr func(in S) error) Result[error, S] {
	if input.isSuccess {
		if err := maybeErr(input.success); err != nil {
			return Failure[S](err)
		}
	}
	return input
}

// TryMap transforms a successful input with a function returning
// (Out, error); a returned error or a panic becomes the failure.
func TryMap[In, Out any](input Result[error, In], onTryExecute func(r In) (Out, error)) Result[error, Out] {
	if !input.isSuccess {
		return Failure[Out](input.failure)
	}
	return Try(func() (Out, error) {
		return onTryExecute(input.success)
	})
}
