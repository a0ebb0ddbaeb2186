package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type ForbiddenError struct {
	ErrorMessage
}

// DatabaseError wraps a failed Firestore call. Operation is the coarse verb
// ("create", "read", "update", "delete") for log correlation.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// AuthError carries a provider error code (Firebase style, e.g.
// "auth/user-disabled") alongside the user-facing message for it.
type AuthError struct {
	ErrorMessage
	Code string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewAuthError(code string) *AuthError {
	return &AuthError{
		ErrorMessage: ErrorMessage{Message: AuthMessage(code)},
		Code:         code,
	}
}
