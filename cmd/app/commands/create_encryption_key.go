package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// RunCreateEncryptionKey generates a cryptographically secure 32-byte field
// encryption key and prints it base64-encoded, ready for the ENCRYPTION_KEY
// environment variable.
//
// The raw key material is zeroed from memory after encoding. Rotating the key
// invalidates every stored ciphertext; decrypt and re-encrypt existing rows
// before discarding the old key.
func RunCreateEncryptionKey(w io.Writer) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(key)

	fmt.Fprintln(w, "# Field Encryption Key Configuration")
	fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ENCRYPTION_KEY=\"%s\"\n", encodedKey)

	// Zero out the key from memory
	for i := range key {
		key[i] = 0
	}

	return nil
}
