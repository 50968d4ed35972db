package registration

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

const minPasswordLength = 6

var passwordRules = []func(string) error{
	func(p string) error {
		if len(p) < minPasswordLength {
			return errors.New("password is too short")
		}
		return nil
	},
	requireRune(unicode.IsDigit, "password must contain a number"),
	requireRune(unicode.IsLower, "password must contain a lowercase letter"),
	requireRune(unicode.IsUpper, "password must contain an uppercase letter"),
	func(p string) error {
		if !strings.Contains(p, "_") {
			return errors.New("password must contain an underscore")
		}
		return nil
	},
}

func requireRune(match func(rune) bool, message string) func(string) error {
	return func(p string) error {
		if !strings.ContainsFunc(p, match) {
			return errors.New(message)
		}
		return nil
	}
}

// Password holds a bcrypt hash, never the plain text.
type Password struct {
	hash string
}

// NewPassword checks every rule, reporting all broken ones in a single
// ValidationError, and hashes the accepted password with the given bcrypt
// cost.
func NewPassword(plain string, cost int) result.Result[error, Password] {
	validated := result.MapFailure(
		result.ValidateAll(result.Success[error](plain), false, passwordRules...),
		func(err error) error {
			messages := make([]string, 0)
			for _, e := range fp.GetErrors(err) {
				messages = append(messages, e.Error())
			}
			return NewValidationError(strings.Join(messages, ", "))
		})

	return result.TryMap(validated, func(p string) (Password, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(p), cost)
		if err != nil {
			return Password{}, err
		}
		return Password{hash: string(hash)}, nil
	})
}

func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

func (p Password) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

func (p Password) Hash() string {
	return p.hash
}
