package registration

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/option"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

var registeredAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	return NewService(repo,
		WithClock(clockwork.NewFakeClockAt(registeredAt)),
		WithLogger(zap.NewNop()),
		WithBcryptCost(bcrypt.MinCost))
}

func awaitFailure[S any](t *testing.T, d deferred.Deferred[S, error]) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := deferred.Await(ctx, d)
	require.NoError(t, err)
	failure, ok := r.GetFailure()
	require.True(t, ok, "expected a rejection")
	return failure
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	service := newTestService(repo)

	resp := await(t, service.Register(ctx, Request{Email: "jane@example.com", Password: "Secret_1"}))
	assert.Equal(t, "jane@example.com", resp.Email)
	_, ok := ParseID(resp.ID).Get()
	assert.True(t, ok, "the response carries a valid id")

	email, _ := ParseEmail("jane@example.com").Get()
	stored, ok := await(t, repo.FindByEmail(ctx, email)).Get()
	require.True(t, ok)
	assert.Equal(t, resp.ID, stored.ID.String())
	assert.True(t, stored.Password.Matches("Secret_1"))
	assert.Equal(t, registeredAt, stored.RegisteredAt)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(NewMemoryRepository())
	req := Request{Email: "jane@example.com", Password: "Secret_1"}

	await(t, service.Register(ctx, req))
	err := awaitFailure(t, service.Register(ctx, req))
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Register_InvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	service := newTestService(repo)

	err := awaitFailure(t, service.Register(ctx, Request{Email: "jane", Password: "Secret_1"}))
	assert.EqualError(t, err, "invalid email format")

	err = awaitFailure(t, service.Register(ctx, Request{Email: "jane@example.com", Password: "secret"}))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "password must contain an uppercase letter")

	assert.Empty(t, await(t, repo.FindAll(ctx)), "nothing is stored for rejected input")
}

func TestService_Register_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	const registrations = 20

	file, err := NewFileRepository(filepath.Join(t.TempDir(), "users.yaml"))
	require.NoError(t, err)

	repos := map[string]Repository{
		"memory": NewMemoryRepository(),
		"file":   file,
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			service := newTestService(repo)
			req := Request{Email: "jane@example.com", Password: "Secret_1"}

			outcomes := make([]result.Result[error, Response], registrations)
			waitErrs := make([]error, registrations)

			var wg sync.WaitGroup
			for i := range registrations {
				wg.Add(1)
				go func() {
					defer wg.Done()
					outcomes[i], waitErrs[i] = deferred.Await(ctx, service.Register(ctx, req))
				}()
			}
			wg.Wait()

			var created, duplicates int
			for i, r := range outcomes {
				require.NoError(t, waitErrs[i])
				if r.IsSuccess() {
					created++
					continue
				}
				failure, _ := r.GetFailure()
				assert.ErrorIs(t, failure, ErrUserExists)
				duplicates++
			}

			assert.Equal(t, 1, created)
			assert.Equal(t, registrations-1, duplicates)
			assert.Len(t, await(t, repo.FindAll(ctx)), 1)
		})
	}
}

type failingRepository struct {
	*MemoryRepository
	err     error
	inserts int
}

func (r *failingRepository) FindByEmail(context.Context, Email) deferred.Deferred[option.Option[User], error] {
	return deferred.Reject[option.Option[User]](r.err)
}

func (r *failingRepository) Insert(ctx context.Context, user User) deferred.Deferred[User, error] {
	r.inserts++
	return r.MemoryRepository.Insert(ctx, user)
}

func TestService_Register_RepositoryFailure(t *testing.T) {
	t.Parallel()

	down := errors.New("store unavailable")
	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), err: down}
	service := newTestService(repo)

	err := awaitFailure(t, service.Register(context.Background(), Request{Email: "jane@example.com", Password: "Secret_1"}))
	assert.ErrorIs(t, err, down)
	assert.Zero(t, repo.inserts, "a failed lookup short-circuits the insert")
}

func TestService_Register_IsLazy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	service := newTestService(repo)

	pending := service.Register(ctx, Request{Email: "jane@example.com", Password: "Secret_1"})
	assert.Empty(t, await(t, repo.FindAll(ctx)))

	await(t, pending)
	assert.Len(t, await(t, repo.FindAll(ctx)), 1)
}
