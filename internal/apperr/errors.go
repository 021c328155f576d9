package apperr

// ValidationError rejects bad caller input before any corpus scan: an empty
// search phrase, an unknown language or normalization mode, an out-of-range
// smoothing window.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// UnavailableError signals that a required data source cannot serve the
// request: the corpus store is unreachable, or holds no searchable documents
// for the requested language. Callers must keep this distinct from a valid
// zero-match result.
type UnavailableError struct {
	Resource string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return e.Resource + " unavailable: " + e.Err.Error()
	}
	return e.Resource + " unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func NewUnavailable(resource string, err error) *UnavailableError {
	return &UnavailableError{Resource: resource, Err: err}
}
