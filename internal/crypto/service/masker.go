package service

import (
	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// maskPrefix is the fixed display prefix for masked values.
const maskPrefix = "**** **** **** "

// MaskTail derives a display-safe masked string from the plaintext just
// submitted: "**** **** **** " followed by the last four characters.
// Used by the creation-response path, which still holds the raw input.
func MaskTail(plaintext string) string {
	return maskPrefix + lastFour(plaintext)
}

// MaskEnvelopeTail derives a masked string from a stored envelope without
// decrypting: the tail comes from the hex-encoded ciphertext segment.
//
// Note that for the same record this produces a different tail than MaskTail
// produced at creation time — the list view masks over ciphertext hex while
// the create response masks over the submitted digits. This divergence is
// deliberate, preserved behavior; callers must not expect the two to agree.
func MaskEnvelopeTail(envelope string) (string, error) {
	ciphertextHex, err := cryptoDomain.CiphertextHex(envelope)
	if err != nil {
		return "", err
	}
	return maskPrefix + lastFour(ciphertextHex), nil
}

// lastFour returns the final four characters of s, or s itself when shorter.
// Counts runes, not bytes: passwords are not digit-constrained, and a byte
// slice could split a multibyte character and emit invalid UTF-8.
func lastFour(s string) string {
	runes := []rune(s)
	if len(runes) <= 4 {
		return s
	}
	return string(runes[len(runes)-4:])
}
