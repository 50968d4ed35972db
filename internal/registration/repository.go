package registration

import (
	"context"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/option"
)

// Repository stores users. Every call is deferred: nothing touches the
// store until the returned computation is run.
type Repository interface {
	// Save inserts the user or replaces the one with the same ID.
	Save(ctx context.Context, user User) deferred.Deferred[User, error]
	// Insert saves the user unless another user already has its email, in
	// which case it rejects with ErrUserExists. The check and the write are
	// atomic.
	Insert(ctx context.Context, user User) deferred.Deferred[User, error]
	FindByID(ctx context.Context, id ID) deferred.Deferred[option.Option[User], error]
	FindByEmail(ctx context.Context, email Email) deferred.Deferred[option.Option[User], error]
	FindAll(ctx context.Context) deferred.Deferred[[]User, error]
	// Remove deletes the user with the same ID; removing an unknown user is
	// not an error.
	Remove(ctx context.Context, user User) deferred.Deferred[struct{}, error]
}

func findUser(users []User, match func(User) bool) option.Option[User] {
	for _, u := range users {
		if match(u) {
			return option.Present(u)
		}
	}
	return option.Absent[User]()
}

func upsertUser(users []User, user User) []User {
	for i, u := range users {
		if u.ID.Equal(user.ID) {
			users[i] = user
			return users
		}
	}
	return append(users, user)
}

func insertUser(users []User, user User) ([]User, error) {
	taken := findUser(users, func(u User) bool {
		return u.Email.Equal(user.Email) && !u.ID.Equal(user.ID)
	})
	if taken.IsPresent() {
		return users, ErrUserExists
	}
	return upsertUser(users, user), nil
}

func removeUser(users []User, user User) []User {
	kept := users[:0]
	for _, u := range users {
		if !u.ID.Equal(user.ID) {
			kept = append(kept, u)
		}
	}
	return kept
}
