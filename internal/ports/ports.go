// Package ports defines the interfaces (contracts) that adapters must
// implement. These are the boundaries of the hexagonal architecture: the
// engine and app layer depend only on these interfaces, never on concrete
// implementations.
package ports

import "github.com/civmc-shops/shopdex/internal/domain/market"

// CatalogueSource supplies the immutable base list of shop records. The core
// performs no schema validation beyond the coordinate usability checks in the
// engine; a source is free to return an empty list.
type CatalogueSource interface {
	// Load reads the full base catalogue. Called at startup and again on
	// reload; each call returns a fresh slice the caller owns.
	Load() ([]market.Shop, error)
}

// OverrideStore persists shopkeeper edits keyed by shop name. A save is a
// simple keyed overwrite; the store never decides when to persist, triggers
// are external.
//
// Writes must be transactional: a crash mid-write must not corrupt
// previously committed overrides.
type OverrideStore interface {
	// SaveOverride overwrites the override for a shop.
	SaveOverride(shopName string, ov market.Override) error

	// LoadOverrides returns all stored overrides by shop name.
	// Returns an empty map, not nil error, when none exist.
	LoadOverrides() (map[string]market.Override, error)

	// DeleteOverride removes a shop's override. Idempotent: deleting a
	// nonexistent override is not an error.
	DeleteOverride(shopName string) error
}

// PasskeyLength is the exact credential length the identity check accepts.
const PasskeyLength = 16

// Keyring resolves shopkeeper credentials. The engine's catalogue and offer
// logic never depends on this check's outcome.
type Keyring interface {
	// Resolve maps a passkey to the shop it authorizes. Returns "", false
	// for unknown or malformed (non-16-char) passkeys; never an error for
	// a plain failed login.
	Resolve(passkey string) (shopName string, ok bool, err error)

	// SetPasskey registers (or replaces) the passkey for a shop.
	// Fails if the passkey is not exactly PasskeyLength characters.
	SetPasskey(shopName, passkey string) error

	// RemovePasskeys removes every passkey registered for a shop.
	RemovePasskeys(shopName string) error
}

// Watcher monitors the catalogue file for external edits.
type Watcher interface {
	// Watch starts monitoring path. onChange is called (debounced) after
	// each write to the file.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
