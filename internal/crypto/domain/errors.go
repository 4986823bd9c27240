package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// Key loading errors are startup-fatal configuration errors: they are raised
// once before the server accepts traffic and never surface per request.
// Envelope and decryption errors wrap ErrInternal because stored ciphertext
// that fails to parse or decrypt is a server-side fault; handlers convert it
// to a generic failure message without exposing cipher internals.
var (
	// ErrEncryptionKeyNotSet indicates the ENCRYPTION_KEY configuration value is missing.
	ErrEncryptionKeyNotSet = errors.New("encryption key not set")

	// ErrInvalidEncryptionKeyBase64 indicates the configured key is not valid base64.
	ErrInvalidEncryptionKeyBase64 = errors.New("encryption key is not valid base64")

	// ErrInvalidKeySize indicates the encryption key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedEnvelope indicates a stored envelope does not match the
	// expected "hex(iv):hex(ciphertext)" form with a 16-byte IV.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrInternal, "malformed envelope")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This occurs when the ciphertext has been tampered with, the wrong key
	// was used, or the recovered padding is invalid. The specific cause is
	// not disclosed to prevent information leakage.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInternal, "decryption failed")
)
