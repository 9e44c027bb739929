package entity

import "time"

// Lifecycle is the retention state of a record. Purged records are removed
// from the store entirely, so LifecyclePurged never appears on a loaded
// entity; it exists so state transitions can be matched exhaustively.
type Lifecycle string

const (
	LifecycleActive  Lifecycle = "active"
	LifecycleDeleted Lifecycle = "deleted"
	LifecyclePurged  Lifecycle = "purged"
)

// IsLive reports whether the record should be visible to normal reads.
func (l Lifecycle) IsLive() bool {
	return l == LifecycleActive
}

// Expired reports whether a record deleted at deletedAt has outlived the
// retention window and is eligible for purging.
func Expired(deletedAt *time.Time, retention time.Duration, now time.Time) bool {
	if deletedAt == nil {
		return false
	}
	return now.Sub(*deletedAt) >= retention
}
