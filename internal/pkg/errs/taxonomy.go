package errs

// Error classes understood by the HTTP layer. Use-case errors carry exactly
// one of these as a mark; the handler maps the mark to a status code.
var (
	ErrNotFound     = New("not found")
	ErrValidation   = New("validation failed")
	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")
	ErrConflict     = New("conflict")
	ErrUpstream     = New("upstream failure")
	ErrInternal     = New("internal error")
)

// Class returns the taxonomy mark carried by err, or ErrInternal.
func Class(err error) error {
	for _, class := range []error{ErrNotFound, ErrValidation, ErrUnauthorized, ErrForbidden, ErrConflict, ErrUpstream} {
		if Is(err, class) {
			return class
		}
	}
	return ErrInternal
}
