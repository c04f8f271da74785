package persistence

import "context"

// KeyValueStore is the persisted state of the application: a flat map of
// keys to JSON-encoded values
type KeyValueStore interface {
	// Get returns the value stored under key
	//
	// Possible errors:
	// - ErrKeyNotFound: If nothing is stored under key
	// - ErrStorage: If the backing store fails
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// SetMany stores every entry or none of them
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// KeyScanner is implemented by stores whose keys can be enumerated, which
// lets expired client sessions be purged
type KeyScanner interface {
	// KeysWithPrefix returns every stored key starting with prefix
	KeysWithPrefix(ctx context.Context, prefix string) ([]string, error)

	// RemoveMany deletes every listed key in one write. Absent keys are ignored.
	RemoveMany(ctx context.Context, keys []string) error
}

// ScannableStore is a KeyValueStore whose keys can be enumerated
type ScannableStore interface {
	KeyValueStore
	KeyScanner
}
