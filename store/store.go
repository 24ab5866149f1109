package store

import "errors"

// ErrAlreadyExists is returned by Create when the key is taken.
var ErrAlreadyExists = errors.New("document already exists")

// DocStore is the document store the gateway persists its bookkeeping in:
// opaque JSON documents addressed by (collection, key). In production
// deployments writes are payment-gated by the surrounding platform, which
// means a persistence step can fail independently of the on-chain operation
// it records; callers must treat that as its own failure mode.
type DocStore interface {
	// FindUnique returns the document, or gerrc.ErrNotFound.
	FindUnique(collection, key string) ([]byte, error)

	// FindMany returns all documents of a collection keyed by document key.
	FindMany(collection string) (map[string][]byte, error)

	// Create stores a new document. The key must not already exist.
	Create(collection, key string, doc []byte) error

	// Update replaces an existing document, or returns gerrc.ErrNotFound.
	// The store has no partial update; callers do read-merge-write.
	Update(collection, key string, doc []byte) error

	// Delete removes a document. Deleting a missing key is not an error.
	Delete(collection, key string) error

	Close() error
}
