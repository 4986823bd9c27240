package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// IVSize is the cipher initialization vector length in bytes (AES block size).
const IVSize = 16

// Envelope is the parsed form of a protected field's persisted representation:
// "hex(iv):hex(ciphertext)". A well-formed envelope always splits into exactly
// two non-empty hex segments, the first decoding to exactly 16 bytes.
type Envelope struct {
	// IV is the random initialization vector generated for this encryption.
	IV []byte
	// Ciphertext is the encrypted field data.
	Ciphertext []byte
}

// ParseEnvelope parses the persisted "hex:hex" text form into an Envelope.
// Returns ErrMalformedEnvelope if the separator is absent, either segment is
// not valid hex, or the IV segment does not decode to exactly 16 bytes.
func ParseEnvelope(s string) (*Envelope, error) {
	ivHex, ciphertextHex, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing separator", ErrMalformedEnvelope)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid iv hex", ErrMalformedEnvelope)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMalformedEnvelope, IVSize, len(iv))
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext hex", ErrMalformedEnvelope)
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrMalformedEnvelope)
	}

	return &Envelope{IV: iv, Ciphertext: ciphertext}, nil
}

// String encodes the envelope into its persisted "hex(iv):hex(ciphertext)" form.
func (e *Envelope) String() string {
	return hex.EncodeToString(e.IV) + ":" + hex.EncodeToString(e.Ciphertext)
}

// CiphertextHex returns the hex-encoded ciphertext segment of a stored
// envelope without parsing it fully. Used by the list-view mask derivation,
// which reads the ciphertext tail instead of decrypting.
func CiphertextHex(s string) (string, error) {
	_, ciphertextHex, ok := strings.Cut(s, ":")
	if !ok || ciphertextHex == "" {
		return "", fmt.Errorf("%w: missing ciphertext segment", ErrMalformedEnvelope)
	}
	return ciphertextHex, nil
}
