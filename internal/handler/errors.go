package handler

import (
	"errors"
	"net/http"
)

// StatusError is an error that carries the HTTP status it should be answered with.
type StatusError struct {
	Status int
	Msg    string
}

func NewStatusError(status int, msg string) *StatusError {
	return &StatusError{Status: status, Msg: msg}
}

func (e *StatusError) Error() string {
	return e.Msg
}

// HandleErrors turns an ErrorHandlerFunc into a plain handler. A *StatusError anywhere
// in the chain selects the response status; any other error is answered with 500.
func HandleErrors(h ErrorHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var se *StatusError
		if errors.As(err, &se) {
			_ = writeError(w, se.Status, se.Msg)
			return
		}
		_ = writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
