package domain

// Domain error kinds. Wrap with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrNotFound          = errString("not found")
	ErrUnauthorized      = errString("unauthorized")
	ErrInvalidTransition = errString("invalid transition")
	ErrInvalidInput      = errString("invalid input")
	ErrConflict          = errString("concurrent modification")
)

type errString string

func (e errString) Error() string { return string(e) }
