// Package domain defines the core domain model for stored website credentials.
// Passwords and phone numbers are persisted only as cipher envelopes; website,
// username, and security question stay plaintext.
//
// Credential records carry no owner field: any caller that can reach the API
// can list or reveal them by website or id. This is preserved behavior,
// flagged rather than silently fixed.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents a stored website credential with encrypted sensitive fields.
type Credential struct {
	// ID is the unique identifier, generated by the store on creation.
	ID uuid.UUID
	// Website is the plaintext site key used for list lookups.
	Website string
	// Username is stored in plaintext.
	Username string
	// Password is the cipher envelope of the raw password.
	Password string
	// Phone is the cipher envelope of the raw phone number. It is never
	// revealed through the reveal path.
	Phone string
	// SecurityQuestion is stored in plaintext.
	SecurityQuestion string
	// CreatedAt is the UTC timestamp when the credential was stored.
	CreatedAt time.Time
}

// NewCredential creates a credential record from already-encrypted field envelopes.
func NewCredential(website, username, encryptedPassword, encryptedPhone, securityQuestion string) *Credential {
	return &Credential{
		ID:               uuid.Must(uuid.NewV7()),
		Website:          website,
		Username:         username,
		Password:         encryptedPassword,
		Phone:            encryptedPhone,
		SecurityQuestion: securityQuestion,
		CreatedAt:        time.Now().UTC(),
	}
}
