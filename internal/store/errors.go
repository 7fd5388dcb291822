package store

import "errors"

// Sentinel errors shared by all stores. Handlers map these onto HTTP
// status codes; stores never import net/http.
var (
	// ErrNotFound means no document matched the {id, owner} filter.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a unique key (email, or journal month/year) is taken.
	ErrConflict = errors.New("already exists")
)
