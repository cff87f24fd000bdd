// Package storage persists uploaded byte streams so a decoded graph can
// always be re-derived from its original bytes. Keys are KSUIDs, which
// sort by creation time.
package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

var (
	// ErrNotFound indicates no stream is stored under the given id.
	ErrNotFound = errors.New("stream not found")

	// ErrTooLarge indicates the stream exceeds the configured limit.
	ErrTooLarge = errors.New("stream exceeds size limit")
)

// StreamStore persists raw streams keyed by KSUID.
type StreamStore struct {
	db       *pebble.DB
	maxBytes int64
}

// NewStreamStore opens (or creates) the store at path. maxBytes caps
// individual stream size; zero or negative disables the cap.
func NewStreamStore(path string, maxBytes int64) (*StreamStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open stream store: %w", err)
	}
	return &StreamStore{db: db, maxBytes: maxBytes}, nil
}

// Put stores a new stream and returns its generated id.
func (s *StreamStore) Put(data []byte) (ksuid.KSUID, error) {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return ksuid.Nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), s.maxBytes)
	}
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store stream %s: %w", id, err)
	}
	return id, nil
}

// Get returns a copy of the stream stored under id.
func (s *StreamStore) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read stream %s: %w", id, err)
	}
	defer closer.Close()

	// The slice pebble hands back is only valid until the closer runs.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the stream stored under id. Deleting an absent id is
// not an error.
func (s *StreamStore) Delete(id ksuid.KSUID) error {
	if err := s.db.Delete(id.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete stream %s: %w", id, err)
	}
	return nil
}

// List returns the stored ids in creation order.
func (s *StreamStore) List() ([]ksuid.KSUID, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate stream store: %w", err)
	}
	defer iter.Close()

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			continue // not a stream key
		}
		ids = append(ids, id)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate stream store: %w", err)
	}
	return ids, nil
}

// Close flushes and closes the underlying database.
func (s *StreamStore) Close() error {
	return s.db.Close()
}
