// Package record implements the generic entity store underneath every record
// kind: an in-memory collection in insertion order, a monotonically increasing
// identifier counter, and full-rewrite persistence to a delimited text file.
package record

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rs/zerolog"
)

// Entity is a record with a store-assigned integer identifier.
type Entity interface {
	RecordID() int
	SetRecordID(id int)
}

// Store holds one entity kind. It is not safe for concurrent use; a single
// operator session owns the data.
type Store[T Entity] struct {
	name     string
	codec    Codec[T]
	persist  Persistence
	capacity int
	logger   zerolog.Logger

	records []T
	nextID  int
}

// NewStore builds a store. capacity bounds the live record count; zero or
// negative disables the bound.
func NewStore[T Entity](name string, codec Codec[T], persist Persistence, capacity int, logger zerolog.Logger) *Store[T] {
	return &Store[T]{
		name:     name,
		codec:    codec,
		persist:  persist,
		capacity: capacity,
		logger:   logger.With().Str("store", name).Logger(),
		nextID:   1,
	}
}

// Load replaces the in-memory collection with the persisted records. Lines
// that fail to decode are dropped silently; a missing backing file yields an
// empty store. The identifier counter resumes from the maximum id seen plus
// one, or 1 when the store is empty.
func (s *Store[T]) Load() error {
	s.records = nil
	s.nextID = 1
	lines, err := s.persist.Load()
	if err != nil {
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := s.codec.Decode(line)
		if err != nil {
			s.logger.Debug().Err(err).Str("line", line).Msg("skipping malformed record")
			continue
		}
		s.records = append(s.records, rec)
		if id := rec.RecordID(); id >= s.nextID {
			s.nextID = id + 1
		}
	}
	return nil
}

// Save fully rewrites the backing store from the current collection in
// insertion order.
func (s *Store[T]) Save() error {
	lines := make([]string, 0, len(s.records))
	for _, rec := range s.records {
		lines = append(lines, s.codec.Encode(rec))
	}
	if err := s.persist.Save(lines); err != nil {
		return fmt.Errorf("save %s: %w", s.name, err)
	}
	return nil
}

// flush persists after a mutation. A save failure is logged, not surfaced:
// the in-memory state stays authoritative and the on-disk copy goes stale.
func (s *Store[T]) flush() {
	if err := s.Save(); err != nil {
		s.logger.Error().Err(err).Msg("persist failed; in-memory state retained")
	}
}

// NextID returns the current counter value and advances it. Returned values
// are never reused within a process lifetime, even after a delete.
func (s *Store[T]) NextID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Add assigns the next identifier, appends at the tail, and persists. When
// the store is at capacity no identifier is consumed and nothing changes.
func (s *Store[T]) Add(rec T) error {
	if s.capacity > 0 && len(s.records) >= s.capacity {
		return fmt.Errorf("%s: %w", s.name, ErrCapacityExceeded)
	}
	rec.SetRecordID(s.NextID())
	s.records = append(s.records, rec)
	s.flush()
	return nil
}

// FindByID returns the first record with the given identifier.
func (s *Store[T]) FindByID(id int) (T, error) {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", s.name, id, ErrNotFound)
}

// Update applies apply to the record in place and persists. A missing id
// leaves the store untouched.
func (s *Store[T]) Update(id int, apply func(T)) error {
	rec, err := s.FindByID(id)
	if err != nil {
		return err
	}
	apply(rec)
	s.flush()
	return nil
}

// Remove deletes the record, closing the gap so the remainder keeps its
// relative order, and persists. A missing id leaves the store untouched.
func (s *Store[T]) Remove(id int) error {
	for i, rec := range s.records {
		if rec.RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.flush()
			return nil
		}
	}
	return fmt.Errorf("%s %d: %w", s.name, id, ErrNotFound)
}

// Search yields matching records lazily in collection order. The sequence is
// restartable: ranging over it again rescans from the start.
func (s *Store[T]) Search(match func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range s.records {
			if match(rec) && !yield(rec) {
				return
			}
		}
	}
}

// All returns a copy of the collection in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the live record count.
func (s *Store[T]) Len() int {
	return len(s.records)
}
