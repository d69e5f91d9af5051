package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewStateToken returns n random bytes as unpadded URL-safe base64, suitable for an OAuth state parameter.
func NewStateToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("state token size must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
