package registration

import (
	"github.com/google/uuid"

	"github.com/ib-77/fpkit/pkg/fp/result"
)

var errInvalidID = NewValidationError("invalid id format")

// ID identifies a user. Only random (version 4) UUIDs are accepted.
type ID struct {
	value uuid.UUID
}

func NewID() ID {
	return ID{value: uuid.New()}
}

func ParseID(s string) result.Result[error, ID] {
	parsed := result.MapFailure(
		result.Try(func() (uuid.UUID, error) { return uuid.Parse(s) }),
		func(error) error { return errInvalidID })

	checked := result.FailOnError(parsed, func(u uuid.UUID) error {
		if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
			return errInvalidID
		}
		return nil
	})

	return result.Map(checked, func(u uuid.UUID) ID {
		return ID{value: u}
	})
}

func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

func (id ID) String() string {
	return id.value.String()
}
