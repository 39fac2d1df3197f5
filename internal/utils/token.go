package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// verificationTokenBytes sizes the token at 128 bits of entropy.
const verificationTokenBytes = 16

// NewVerificationToken mints an opaque single-use token for a
// trusted-contact verification link. The token is 32 lowercase hex
// characters drawn from crypto/rand; it carries no structure and is
// matched only by exact database lookup.
func NewVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating verification token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
