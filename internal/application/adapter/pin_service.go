package adapter

// PinService defines the interface for PIN hashing operations.
type PinService interface {
	// HashPin generates a salted hash of the given PIN.
	HashPin(pin string) (string, error)

	// VerifyPin checks a PIN against its stored hash.
	VerifyPin(pin, hash string) (bool, error)
}
