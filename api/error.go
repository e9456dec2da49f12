package api

import "errors"

// Error is a typed backend error. The backend reports failures as
// `{"error": "human readable message"}`; the message is meant to be shown
// to the user verbatim.
type Error struct {
	// HTTP status code of the response carrying the error.
	Status int `json:"-"`

	Message string `json:"error" example:"you must specify an expense ID"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// AsError returns the typed backend error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
