package registration

import (
	"regexp"

	"github.com/ib-77/fpkit/pkg/fp/result"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var errInvalidEmail = NewValidationError("invalid email format")

type Email struct {
	value string
}

func ParseEmail(s string) result.Result[error, Email] {
	checked := result.FailOnError(result.Success[error](s), func(in string) error {
		if !emailPattern.MatchString(in) {
			return errInvalidEmail
		}
		return nil
	})

	return result.Map(checked, func(in string) Email {
		return Email{value: in}
	})
}

func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
