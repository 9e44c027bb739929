package adapter

import "context"

// Well-known setting keys.
const (
	SettingPinHash = "pin_hash"
)

// SettingRepository is a small key/value store for app-level settings such
// as the PIN hash.
type SettingRepository interface {
	// Get retrieves the value for a key. Returns ("", nil) when the key is
	// absent.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for a key.
	Set(ctx context.Context, key, value string) error
}
