package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

// Credential-specific error definitions.
var (
	// ErrCredentialNotFound indicates no credential matches the given id.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")
)
