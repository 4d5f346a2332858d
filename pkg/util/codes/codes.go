// Package codes generates the opaque single-use tokens that travel in
// emailed links, as opposed to the short numeric codes a user types in
// (those live in pkg/util/otp).
package codes

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLength = errors.New("invalid token length")

// ResetTokenByteLength is the number of random bytes in a password-reset
// token (produces 32 hex chars).
const ResetTokenByteLength = 16

// GenerateResetToken creates a single-use password-reset token.
// Returns a 32-character hex string.
func GenerateResetToken() (string, error) {
	return GenerateSecureToken(ResetTokenByteLength)
}

// GenerateSecureToken creates a cryptographically secure hex token.
// byteLength is the number of random bytes; the output is twice as long.
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// NormalizeToken trims whitespace and lowercases a token pasted from an
// email link so key lookups are exact.
func NormalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
