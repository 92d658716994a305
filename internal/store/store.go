// Package store holds the in-memory ordered collection of records for the
// current session and the editing state machine. All mutation paths funnel
// through the Apply methods so the collection is never rebuilt ad hoc at call
// sites, and the single-editable-record invariant is enforced structurally by
// the one editing slot.
package store

import (
	"sync"

	"github.com/avydrenko/shortdash/internal/entity"
)

// Editing is the transient state of the one record being revised: its id and
// the draft URL seeded from the record's current original URL.
type Editing struct {
	ID    string
	Draft string
}

// RecordStore owns the record collection, the editing slot and the per-record
// in-flight markers. It is mutated exclusively through responses applied by
// the use case layer.
type RecordStore struct {
	mu       sync.Mutex
	records  []entity.Record
	editing  *Editing
	inflight map[string]struct{}
}

func New() *RecordStore {
	return &RecordStore{
		inflight: make(map[string]struct{}),
	}
}

// Records returns a copy of the collection in its current order.
func (s *RecordStore) Records() []entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id, if present.
func (s *RecordStore) Get(id string) (entity.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Record{}, false
}

// Len returns the number of records in the collection.
func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Stats returns the number of links and the total click count.
func (s *RecordStore) Stats() (links int, clicks int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		clicks += r.Counter
	}
	return len(s.records), clicks
}

// ApplyFetch replaces the whole collection with the server's, preserving its
// order, and discards any in-progress editing state.
func (s *RecordStore) ApplyFetch(records []entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]entity.Record, len(records))
	copy(s.records, records)
	s.editing = nil
}

// ApplyCreate prepends a newly created record to the collection.
func (s *RecordStore) ApplyCreate(record entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]entity.Record{record}, s.records...)
}

// ApplyUpdate replaces the mutable fields of the matching record in place.
// Identity, ownership and counters are kept as they were.
func (s *RecordStore) ApplyUpdate(record entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i].OriginalURL = record.OriginalURL
			s.records[i].UpdatedAt = record.UpdatedAt
			return
		}
	}
}

// ApplyDelete removes the record with the given id, keeping the relative
// order of the rest. It reports whether a record was removed.
func (s *RecordStore) ApplyDelete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			if s.editing != nil && s.editing.ID == id {
				s.editing = nil
			}
			return true
		}
	}
	return false
}

// Clear discards the collection, the editing slot and the in-flight markers.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.editing = nil
	s.inflight = make(map[string]struct{})
}

// BeginEdit moves the record with the given id into editing state, seeding
// the draft from its current original URL. A record already mid-edit is
// silently abandoned: its unsaved draft is discarded, never persisted.
func (s *RecordStore) BeginEdit(id string) (Editing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			s.editing = &Editing{ID: id, Draft: r.OriginalURL}
			return *s.editing, nil
		}
	}
	return Editing{}, entity.ErrNoRecord
}

// SetDraft replaces the draft URL of the record being edited.
func (s *RecordStore) SetDraft(draft string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return entity.ErrNotEditing
	}
	s.editing.Draft = draft
	return nil
}

// EditingState returns the current editing slot, if occupied.
func (s *RecordStore) EditingState() (Editing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return Editing{}, false
	}
	return *s.editing, true
}

// CancelEdit returns the edited record to viewing state, discarding the draft.
func (s *RecordStore) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editing = nil
}

// BeginMutation marks a record as having an outstanding request. A second
// mutation on the same id is refused until the first completes.
func (s *RecordStore) BeginMutation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inflight[id]; ok {
		return entity.ErrMutationInFlight
	}
	s.inflight[id] = struct{}{}
	return nil
}

// EndMutation clears the in-flight marker for a record.
func (s *RecordStore) EndMutation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, id)
}
