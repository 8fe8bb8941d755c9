package constants

import "net/http"

// CodedError is an error carrying the HTTP status the API should answer with.
// The echo error handler unwraps down to the first CodedError it finds.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string { return e.msg }
func (e *CodedError) Code() int     { return e.code }

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrBadRequest        = NewCodedError("bad request", http.StatusBadRequest)
	ErrNoCachedData      = NewCodedError("no cached CORDIS data; run a refresh first", http.StatusConflict)
	ErrNotModified       = NewCodedError("no updates available in CORDIS", http.StatusNotModified)
)
