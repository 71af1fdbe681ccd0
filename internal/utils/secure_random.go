package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/SscSPs/finmatrix/internal/apperrors"
)

// MinSigningKeyBytes is the shortest generated HS256 signing key.
const MinSigningKeyBytes = 32

// GenerateSigningKey returns nBytes of crypto/rand output, hex encoded, for use
// as an ephemeral JWT secret. Keys shorter than MinSigningKeyBytes are refused.
func GenerateSigningKey(nBytes int) (string, error) {
	if nBytes < MinSigningKeyBytes {
		return "", fmt.Errorf("%w: signing key needs at least %d bytes, got %d", apperrors.ErrValidation, MinSigningKeyBytes, nBytes)
	}
	key := make([]byte, nBytes)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(key), nil
}
