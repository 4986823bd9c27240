package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

// Card-specific error definitions.
var (
	// ErrCardNotFound indicates no card matches the given id (and, for
	// owner-scoped operations, the given owner).
	ErrCardNotFound = errors.Wrap(errors.ErrNotFound, "card not found")
)
