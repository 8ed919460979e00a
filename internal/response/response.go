// Package response writes the JSON envelope every advisor endpoint uses:
// a data field on success, a code/message error object otherwise.
package response

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// JSON writes data wrapped in the success envelope.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{Data: data}
	json.NewEncoder(w).Encode(resp)
}

// ErrorJSON writes the error envelope; the HTTP status is repeated in the
// body so form-layer clients don't have to read transport headers.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{
		Error: &Error{
			Code:    status,
			Message: message,
		},
	}
	json.NewEncoder(w).Encode(resp)
}
