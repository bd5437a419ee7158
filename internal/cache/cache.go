package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/jaywantadh/DeckSweep/internal/compressor"
)

// Store caches extracted page texts in BadgerDB so repeated runs against the
// same deck (e.g. while tuning the threshold) skip extraction. Values are
// lz4-compressed JSON arrays of normalized page texts, keyed by the SHA-256
// of the source file's bytes.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the cache database at dir.
func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %v", err)
	}
	return &Store{db: db}, nil
}

// Close closes the cache database.
func (s *Store) Close() error {
	return s.db.Close()
}

// FileKey returns the cache key for the file at path: the hex SHA-256 of its
// contents. Any change to the file yields a new key, so stale entries are
// simply never read again.
func FileKey(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %v", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to hash file: %v", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Put stores the page texts for the given file key.
func (s *Store) Put(key string, texts []string) error {
	encoded, err := json.Marshal(texts)
	if err != nil {
		return fmt.Errorf("failed to encode page texts: %v", err)
	}
	compressed, err := compressor.Compress(encoded)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("texts:"+key), compressed)
	})
}

// Get retrieves the page texts for the given file key. The second return is
// false on a miss; a corrupt entry is reported as a miss as well, so the
// caller falls back to extraction.
func (s *Store) Get(key string) ([]string, bool, error) {
	var texts []string
	found := true

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("texts:" + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decompressed, err := compressor.Decompress(val)
			if err != nil {
				found = false
				return nil
			}
			if err := json.Unmarshal(decompressed, &texts); err != nil {
				found = false
			}
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %v", err)
	}
	if !found {
		return nil, false, nil
	}
	return texts, true, nil
}
