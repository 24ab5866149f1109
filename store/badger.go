package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"

	"github.com/stationlabs/blobgate/types"
)

const (
	gcTimeout    = 1 * time.Minute
	discardRatio = 0.5 // Recommended by badger. Indicates that a file will be rewritten if half the space can be discarded.

	keySeparator = "/"
)

var _ DocStore = &BadgerStore{}

// BadgerStore is a DocStore implementation over Badger v4. Collections are
// key prefixes.
type BadgerStore struct {
	db        *badger.DB
	closing   chan struct{}
	closeOnce sync.Once
}

// NewInMemoryStore builds a DocStore that works in-memory (without accessing disk).
func NewInMemoryStore() *BadgerStore {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		panic(err)
	}
	return &BadgerStore{
		db:      db,
		closing: make(chan struct{}),
	}
}

// NewBadgerStore opens (or creates) the store under rootDir/dbPath.
func NewBadgerStore(rootDir, dbPath string, logger types.Logger) (*BadgerStore, error) {
	path := rootify(rootDir, dbPath)
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger db %s: %w", path, err)
	}
	b := &BadgerStore{
		db:      db,
		closing: make(chan struct{}),
	}
	go b.gc(gcTimeout, discardRatio, logger)
	return b, nil
}

// rootify works just like in cosmos-sdk
func rootify(rootDir, dbPath string) string {
	if filepath.IsAbs(dbPath) {
		return dbPath
	}
	return filepath.Join(rootDir, dbPath)
}

func (b *BadgerStore) gc(period time.Duration, discardRatio float64, logger types.Logger) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-b.closing:
			return
		case <-ticker.C:
			err := b.db.RunValueLogGC(discardRatio)
			if err != nil {
				logger.Debug("Running db RunValueLogGC", "err", err)
				continue
			}
		}
	}
}

// Close implements DocStore.
func (b *BadgerStore) Close() error {
	b.closeOnce.Do(func() {
		close(b.closing)
	})
	return b.db.Close()
}

func docKey(collection, key string) []byte {
	return []byte(collection + keySeparator + key)
}

// FindUnique implements DocStore.
func (b *BadgerStore) FindUnique(collection, key string) ([]byte, error) {
	txn := b.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(docKey(collection, key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, gerrc.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// FindMany implements DocStore.
func (b *BadgerStore) FindMany(collection string) (map[string][]byte, error) {
	prefix := []byte(collection + keySeparator)
	docs := make(map[string][]byte)

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			docs[string(item.Key()[len(prefix):])] = val
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Create implements DocStore.
func (b *BadgerStore) Create(collection, key string, doc []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		k := docKey(collection, key)
		_, err := txn.Get(k)
		if err == nil {
			return fmt.Errorf("document %s/%s: %w", collection, key, ErrAlreadyExists)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(k, doc)
	})
}

// Update implements DocStore.
func (b *BadgerStore) Update(collection, key string, doc []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		k := docKey(collection, key)
		_, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("document %s/%s: %w", collection, key, gerrc.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return txn.Set(k, doc)
	})
}

// Delete implements DocStore.
func (b *BadgerStore) Delete(collection, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(docKey(collection, key))
	})
}
