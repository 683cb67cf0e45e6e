package domain

// APIError is returned for a non-2xx API response.
//
// Error returns the server's message verbatim so it can be shown to the user.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// ValidationError is a failure detected locally, before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
