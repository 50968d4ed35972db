package registration

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/option"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Service registers users against a Repository.
type Service struct {
	repository Repository
	clock      clockwork.Clock
	logger     *zap.Logger
	cost       int
}

type ServiceOption func(*Service)

func WithClock(clock clockwork.Clock) ServiceOption {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithBcryptCost sets the hashing cost for new passwords.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		s.cost = cost
	}
}

func NewService(repository Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repository: repository,
		clock:      clockwork.NewRealClock(),
		logger:     zap.NewNop(),
		cost:       bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user unless the email is already taken. The lookup
// rejects known emails before hashing and Insert settles concurrent
// registrations of the same email. Malformed input and duplicates reject
// with a *ValidationError; repository errors are passed through.
func (s *Service) Register(ctx context.Context, req Request) deferred.Deferred[Response, error] {
	return deferred.FlatMap(deferred.FromResult(ParseEmail(req.Email)), func(email Email) deferred.Deferred[Response, error] {
		return deferred.FlatMap(s.repository.FindByEmail(ctx, email), func(existing option.Option[User]) deferred.Deferred[Response, error] {
			return option.Fold(existing,
				func() deferred.Deferred[Response, error] {
					return s.registerNewUser(ctx, email, req.Password)
				},
				func(User) deferred.Deferred[Response, error] {
					return s.notifyExistingUser(email)
				})
		})
	})
}

func (s *Service) notifyExistingUser(email Email) deferred.Deferred[Response, error] {
	s.logger.Debug("registration rejected, email taken", zap.Stringer("email", email))
	return deferred.Reject[Response](error(ErrUserExists))
}

func (s *Service) registerNewUser(ctx context.Context, email Email, password string) deferred.Deferred[Response, error] {
	user := result.Map(NewPassword(password, s.cost), func(p Password) User {
		return User{
			ID:           NewID(),
			Email:        email,
			Password:     p,
			RegisteredAt: s.clock.Now().UTC(),
		}
	})

	saved := deferred.FlatMap(deferred.FromResult(user), func(u User) deferred.Deferred[User, error] {
		return s.repository.Insert(ctx, u)
	})

	return deferred.Map(saved, User.ToResponse).Tap(func(resp Response) {
		s.logger.Info("user registered", zap.String("id", resp.ID), zap.String("email", resp.Email))
	})
}
