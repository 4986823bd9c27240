// Package service provides the field encryption cipher and mask derivation
// used to protect card and credential fields at rest.
package service

// FieldCipher encrypts and decrypts single text fields, producing and
// consuming the persisted "hex(iv):hex(ciphertext)" envelope form.
type FieldCipher interface {
	// Encrypt encrypts plaintext with a fresh random IV and returns the envelope.
	Encrypt(plaintext string) (string, error)

	// Decrypt parses an envelope and returns the original plaintext.
	Decrypt(envelope string) (string, error)
}
