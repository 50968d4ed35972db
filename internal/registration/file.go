package registration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/option"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

type userRecord struct {
	ID           string    `yaml:"id"`
	Email        string    `yaml:"email"`
	PasswordHash string    `yaml:"password_hash"`
	RegisteredAt time.Time `yaml:"registered_at"`
}

func toRecord(u User) userRecord {
	return userRecord{
		ID:           u.ID.String(),
		Email:        u.Email.String(),
		PasswordHash: u.Password.Hash(),
		RegisteredAt: u.RegisteredAt,
	}
}

func (rec userRecord) toUser() result.Result[error, User] {
	return result.FlatMap(ParseID(rec.ID), func(id ID) result.Result[error, User] {
		return result.Map(ParseEmail(rec.Email), func(email Email) User {
			return User{
				ID:           id,
				Email:        email,
				Password:     PasswordFromHash(rec.PasswordHash),
				RegisteredAt: rec.RegisteredAt,
			}
		})
	})
}

// FileRepository stores users as a YAML list in a single file. Each call
// reads or rewrites the whole file on its own goroutine.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository uses path, creating an empty store if it does not
// exist yet.
func NewFileRepository(path string) (*FileRepository, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]\n"), 0o600); err != nil {
			return nil, fmt.Errorf("create user store: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}

	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Save(ctx context.Context, user User) deferred.Deferred[User, error] {
	return fileCall(ctx, func() (User, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		users, err := r.read()
		if err != nil {
			return User{}, err
		}
		return user, r.write(upsertUser(users, user))
	})
}

func (r *FileRepository) Insert(ctx context.Context, user User) deferred.Deferred[User, error] {
	return fileCall(ctx, func() (User, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		users, err := r.read()
		if err != nil {
			return User{}, err
		}
		if users, err = insertUser(users, user); err != nil {
			return User{}, err
		}
		return user, r.write(users)
	})
}

func (r *FileRepository) FindByID(ctx context.Context, id ID) deferred.Deferred[option.Option[User], error] {
	return r.find(ctx, func(u User) bool { return u.ID.Equal(id) })
}

func (r *FileRepository) FindByEmail(ctx context.Context, email Email) deferred.Deferred[option.Option[User], error] {
	return r.find(ctx, func(u User) bool { return u.Email.Equal(email) })
}

func (r *FileRepository) FindAll(ctx context.Context) deferred.Deferred[[]User, error] {
	return fileCall(ctx, func() ([]User, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		return r.read()
	})
}

func (r *FileRepository) Remove(ctx context.Context, user User) deferred.Deferred[struct{}, error] {
	return fileCall(ctx, func() (struct{}, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		users, err := r.read()
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, r.write(removeUser(users, user))
	})
}

func (r *FileRepository) find(ctx context.Context, match func(User) bool) deferred.Deferred[option.Option[User], error] {
	return deferred.Map(r.FindAll(ctx), func(users []User) option.Option[User] {
		return findUser(users, match)
	})
}

func (r *FileRepository) read() ([]User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read user store: %w", err)
	}

	var records []userRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode user store: %w", err)
	}

	users := make([]User, 0, len(records))
	for _, rec := range records {
		decoded := rec.toUser()
		u, ok := decoded.Get()
		if !ok {
			err, _ := decoded.GetFailure()
			return nil, fmt.Errorf("decode user %q: %w", rec.ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *FileRepository) write(users []User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toRecord(u))
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	return nil
}

func fileCall[T any](ctx context.Context, fn func() (T, error)) deferred.Deferred[T, error] {
	return deferred.Async(func() (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn()
	})
}
