package registration

import (
	"time"

	"github.com/ib-77/fpkit/pkg/fp/result"
)

var errSamePassword = NewValidationError("new password must be different")

type User struct {
	ID           ID
	Email        Email
	Password     Password
	RegisteredAt time.Time
}

// ChangePassword returns a copy of u with a new password. Reusing the
// current password is rejected.
func (u User) ChangePassword(plain string, cost int) result.Result[error, User] {
	if u.Password.Matches(plain) {
		return result.Failure[User](error(errSamePassword))
	}

	return result.Map(NewPassword(plain, cost), func(p Password) User {
		u.Password = p
		return u
	})
}

func (u User) ToResponse() Response {
	return Response{
		ID:    u.ID.String(),
		Email: u.Email.String(),
	}
}

type Request struct {
	Email    string `json:"email" schema:"email"`
	Password string `json:"password" schema:"password"`
}

type Response struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
