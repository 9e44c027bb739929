// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/khata-ledger/backend/internal/application/adapter"
)

const (
	// pbkdf2Iterations matches the hashes produced by earlier releases, so
	// existing stored PINs keep verifying.
	pbkdf2Iterations = 100_000
	pinSaltLength    = 16
	pinKeyLength     = 32
)

// pinService implements adapter.PinService with salted PBKDF2-SHA256.
// Hashes are stored as "salt$hash", both hex encoded.
type pinService struct{}

// NewPinService creates a new PIN service instance.
func NewPinService() adapter.PinService {
	return &pinService{}
}

// HashPin generates a salted hash of the given PIN.
func (s *pinService) HashPin(pin string) (string, error) {
	salt := make([]byte, pinSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(pin), salt, pbkdf2Iterations, pinKeyLength, sha256.New)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// VerifyPin checks a PIN against its stored "salt$hash" value.
func (s *pinService) VerifyPin(pin, stored string) (bool, error) {
	saltHex, hashHex, ok := strings.Cut(stored, "$")
	if !ok {
		return false, fmt.Errorf("malformed PIN hash")
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("malformed PIN salt: %w", err)
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, fmt.Errorf("malformed PIN hash: %w", err)
	}

	got := pbkdf2.Key([]byte(pin), salt, pbkdf2Iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
