package interfaces

// Batch is a set of key writes committed together. A nil value deletes the key.
type Batch map[string][]byte

// KeyValueStore is the persisted, string-keyed store the roster lives in.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// GetMany reads keys from one consistent state of the store. Absent keys
	// are missing from the result.
	GetMany(keys ...string) (map[string][]byte, error)
	// Commit applies every write in b or none of them.
	Commit(b Batch) error
}
