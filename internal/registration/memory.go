package registration

import (
	"context"
	"slices"
	"sync"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/option"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// MemoryRepository keeps users in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// guarded runs fn when the body executes, rejecting instead if ctx is
// already done.
func guarded[T any](ctx context.Context, fn func() T) deferred.Deferred[T, error] {
	return deferred.New(func(resolve func(T), reject func(error)) {
		if err := ctx.Err(); err != nil {
			reject(err)
			return
		}
		resolve(fn())
	})
}

func (r *MemoryRepository) Save(ctx context.Context, user User) deferred.Deferred[User, error] {
	return guarded(ctx, func() User {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.users = upsertUser(r.users, user)
		return user
	})
}

func (r *MemoryRepository) Insert(ctx context.Context, user User) deferred.Deferred[User, error] {
	inserted := guarded(ctx, func() result.Result[error, User] {
		r.mu.Lock()
		defer r.mu.Unlock()

		users, err := insertUser(r.users, user)
		if err != nil {
			return result.Failure[User](err)
		}
		r.users = users
		return result.Success[error](user)
	})
	return deferred.FlatMap(inserted, deferred.FromResult[error, User])
}

func (r *MemoryRepository) FindByID(ctx context.Context, id ID) deferred.Deferred[option.Option[User], error] {
	return r.find(ctx, func(u User) bool { return u.ID.Equal(id) })
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email Email) deferred.Deferred[option.Option[User], error] {
	return r.find(ctx, func(u User) bool { return u.Email.Equal(email) })
}

func (r *MemoryRepository) FindAll(ctx context.Context) deferred.Deferred[[]User, error] {
	return guarded(ctx, func() []User {
		r.mu.RLock()
		defer r.mu.RUnlock()

		return slices.Clone(r.users)
	})
}

func (r *MemoryRepository) Remove(ctx context.Context, user User) deferred.Deferred[struct{}, error] {
	return guarded(ctx, func() struct{} {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.users = removeUser(r.users, user)
		return struct{}{}
	})
}

func (r *MemoryRepository) find(ctx context.Context, match func(User) bool) deferred.Deferred[option.Option[User], error] {
	return guarded(ctx, func() option.Option[User] {
		r.mu.RLock()
		defer r.mu.RUnlock()

		return findUser(r.users, match)
	})
}
