// Package httpx holds the JSON response helpers shared by every
// handler package. Clients always receive a {message} body; raw
// error chains stay server-side.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suryapratap64/Fullstack-docs/internal/store"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": msg} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error maps a store/domain error onto the response taxonomy:
// ErrNotFound -> 404, ErrConflict -> 409, anything else -> 500 with a
// safe generic message.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		Message(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrConflict):
		Message(w, http.StatusConflict, "Already exists")
	default:
		Message(w, http.StatusInternalServerError, "Internal server error")
	}
}
