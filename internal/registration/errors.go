package registration

// ValidationError reports input that breaks a domain rule. The HTTP layer
// turns it into a 400.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrUserExists is returned when the email is already registered.
var ErrUserExists = NewValidationError("user already exists with this email")

