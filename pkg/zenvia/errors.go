package zenvia

import "fmt"

// RequestError covers everything that goes wrong after a request leaves
// the client: network failures and non-2xx API responses. StatusCode is
// zero when the request never reached the API.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func IsRequestError(err error) bool {
	_, ok := err.(*RequestError)
	return ok
}

// ValidationError is raised before any network call when an argument
// violates one of the API's fixed enumerations or cross-field rules.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsClientError reports whether err originated in this package, whichever
// kind it is.
func IsClientError(err error) bool {
	return IsRequestError(err) || IsValidationError(err)
}
