// Package store provides the persisted key-value stores the roster lives in.
//
// Every backend implements domain.KeyValueStore and commits a batch of writes
// all-or-nothing:
//   - FileStore: one JSON document on disk, replaced via temp file + rename
//   - FileStore (sealed): the same document encrypted with scrypt +
//     ChaCha20-Poly1305 under a passphrase
//   - SQLiteStore: a kv table, each batch in one transaction
//   - MemoryStore: a map, for tests
//
// Stores lock internally but do not coordinate across processes; two writers
// on the same file or database are last-writer-wins.
package store
