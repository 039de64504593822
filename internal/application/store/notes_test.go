package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/core/internal/adapters/persistence"
	"github.com/daybook/core/internal/ports"
)

func noteReq(title string) ports.CreateNoteRequest {
	return ports.CreateNoteRequest{
		Title:   title,
		Content: "content of " + title,
		Date:    "2024-05-18",
	}
}

func TestNoteLifecycle(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	n, err := s.AddNote(noteReq("Shopping"))
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)

	content := "milk, bread"
	require.NoError(t, s.EditNote(n.ID, ports.UpdateNoteRequest{Content: &content}))
	assert.Equal(t, "milk, bread", s.Notes()[0].Content)
	assert.Equal(t, "Shopping", s.Notes()[0].Title)

	require.NoError(t, s.FinishNote(n.ID))
	assert.Empty(t, s.Notes())
	require.Len(t, s.FinishedNotes(), 1)

	require.NoError(t, s.DeleteFinishedNote(n.ID))
	assert.Empty(t, s.FinishedNotes())
}

func TestEditNoteByIDOnly(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	first, _ := s.AddNote(noteReq("first"))
	second, _ := s.AddNote(noteReq("second"))

	// The second add sits at index 0; editing by the first note's id
	// must still hit the first note, never a positional slot.
	title := "renamed"
	require.NoError(t, s.EditNote(first.ID, ports.UpdateNoteRequest{Title: &title}))

	notes := s.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Title)
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, "renamed", notes[1].Title)
	assert.Equal(t, first.ID, notes[1].ID)
}
