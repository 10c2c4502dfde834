package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"ticketdesk/internal/errs"
)

// ErrorBody is the error wire format shared by every endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps the error taxonomy onto the wire: validation failures are
// 400 with the precondition message, persistence failures are 500 with the
// store diagnostic in details.
func WriteError(w http.ResponseWriter, err error) {
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: vErr.Msg})
		return
	}
	var pErr *errs.PersistenceError
	if errors.As(err, &pErr) {
		WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: pErr.Msg, Details: pErr.Details()})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: err.Error()})
}
