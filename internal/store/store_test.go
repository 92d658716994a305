package store

import (
	"testing"
	"time"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []entity.Record {
	return []entity.Record{
		{ID: "a", UserID: "u1", OriginalURL: "https://x.com", ShortURL: "ab12", Counter: 3},
		{ID: "b", UserID: "u1", OriginalURL: "https://y.com", ShortURL: "cd34", Counter: 1},
		{ID: "c", UserID: "u1", OriginalURL: "https://z.com", ShortURL: "ef56"},
	}
}

func TestRecordStore_ApplyFetch(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, sampleRecords(), s.Records())

	t.Run("replaces the whole collection", func(t *testing.T) {
		s.ApplyFetch([]entity.Record{{ID: "d", OriginalURL: "https://d.com"}})

		require.Equal(t, 1, s.Len())
		rec, ok := s.Get("d")
		assert.True(t, ok)
		assert.Equal(t, "https://d.com", rec.OriginalURL)
	})

	t.Run("discards editing state", func(t *testing.T) {
		s.ApplyFetch(sampleRecords())
		_, err := s.BeginEdit("a")
		require.NoError(t, err)

		s.ApplyFetch(sampleRecords())

		_, ok := s.EditingState()
		assert.False(t, ok)
	})
}

func TestRecordStore_ApplyCreate(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())

	s.ApplyCreate(entity.Record{ID: "d", OriginalURL: "https://new.com", ShortURL: "gh78"})

	records := s.Records()
	require.Equal(t, 4, len(records))
	assert.Equal(t, "d", records[0].ID)
	assert.Equal(t, []string{"d", "a", "b", "c"}, recordIDs(records))
}

func TestRecordStore_ApplyUpdate(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())

	before, ok := s.Get("b")
	require.True(t, ok)

	updatedAt := time.Now()
	s.ApplyUpdate(entity.Record{ID: "b", OriginalURL: "https://updated.com", ShortURL: "zz99", Counter: 42, UpdatedAt: updatedAt})

	after, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, "https://updated.com", after.OriginalURL)
	assert.Equal(t, updatedAt, after.UpdatedAt)

	// Everything except the URL and update timestamp is untouched.
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.UserID, after.UserID)
	assert.Equal(t, before.ShortURL, after.ShortURL)
	assert.Equal(t, before.Counter, after.Counter)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s.ApplyUpdate(entity.Record{ID: "nope", OriginalURL: "https://ghost.com"})
		assert.Equal(t, 3, s.Len())
	})
}

func TestRecordStore_ApplyDelete(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())

	assert.True(t, s.ApplyDelete("b"))

	records := s.Records()
	assert.Equal(t, []string{"a", "c"}, recordIDs(records))
	_, ok := s.Get("b")
	assert.False(t, ok)

	t.Run("unknown id", func(t *testing.T) {
		assert.False(t, s.ApplyDelete("b"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("deleting the edited record clears the slot", func(t *testing.T) {
		_, err := s.BeginEdit("a")
		require.NoError(t, err)

		assert.True(t, s.ApplyDelete("a"))

		_, ok := s.EditingState()
		assert.False(t, ok)
	})
}

func TestRecordStore_Editing(t *testing.T) {
	t.Run("draft is seeded from the record", func(t *testing.T) {
		s := New()
		s.ApplyFetch(sampleRecords())

		ed, err := s.BeginEdit("a")

		require.NoError(t, err)
		assert.Equal(t, "a", ed.ID)
		assert.Equal(t, "https://x.com", ed.Draft)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := New()
		s.ApplyFetch(sampleRecords())

		_, err := s.BeginEdit("nope")

		assert.ErrorIs(t, err, entity.ErrNoRecord)
	})

	t.Run("at most one record is editing", func(t *testing.T) {
		s := New()
		s.ApplyFetch(sampleRecords())

		_, err := s.BeginEdit("a")
		require.NoError(t, err)
		require.NoError(t, s.SetDraft("https://unsaved.com"))

		// Switching to b abandons a's draft without persisting it.
		ed, err := s.BeginEdit("b")
		require.NoError(t, err)
		assert.Equal(t, "b", ed.ID)
		assert.Equal(t, "https://y.com", ed.Draft)

		rec, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, "https://x.com", rec.OriginalURL)
	})

	t.Run("set draft without editing", func(t *testing.T) {
		s := New()

		err := s.SetDraft("https://x.com")

		assert.ErrorIs(t, err, entity.ErrNotEditing)
	})

	t.Run("cancel discards the draft", func(t *testing.T) {
		s := New()
		s.ApplyFetch(sampleRecords())

		_, err := s.BeginEdit("a")
		require.NoError(t, err)

		s.CancelEdit()

		_, ok := s.EditingState()
		assert.False(t, ok)
	})
}

func TestRecordStore_Clear(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())
	_, err := s.BeginEdit("a")
	require.NoError(t, err)
	require.NoError(t, s.BeginMutation("b"))

	s.Clear()

	assert.Zero(t, s.Len())
	_, ok := s.EditingState()
	assert.False(t, ok)
	assert.NoError(t, s.BeginMutation("b"))
}

func TestRecordStore_Mutations(t *testing.T) {
	s := New()

	require.NoError(t, s.BeginMutation("a"))
	assert.ErrorIs(t, s.BeginMutation("a"), entity.ErrMutationInFlight)
	assert.NoError(t, s.BeginMutation("b"))

	s.EndMutation("a")
	assert.NoError(t, s.BeginMutation("a"))
}

func TestRecordStore_Stats(t *testing.T) {
	s := New()
	s.ApplyFetch(sampleRecords())

	links, clicks := s.Stats()

	assert.Equal(t, 3, links)
	assert.Equal(t, int64(4), clicks)
}

func recordIDs(records []entity.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
