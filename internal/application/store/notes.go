package store

import (
	"github.com/google/uuid"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// Notes returns the active notes, most recent first.
func (s *Store) Notes() []entities.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// FinishedNotes returns the finished archive through the retention
// filter.
func (s *Store) FinishedNotes() []entities.FinishedNote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.cutoff()
	out := make([]entities.FinishedNote, 0, len(s.finishedNotes))
	for _, f := range s.finishedNotes {
		if f.FinishedAt > cutoff {
			out = append(out, f)
		}
	}
	return out
}

// AddNote creates a note with a fresh unique id and prepends it to the
// active collection.
func (s *Store) AddNote(req ports.CreateNoteRequest) (entities.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return entities.Note{}, err
	}

	note := entities.Note{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
	}

	s.notes = append([]entities.Note{note}, s.notes...)
	s.persist(ports.KeyNotes, s.notes)

	s.metrics.Mutations.WithLabelValues("note", "add").Inc()
	s.logger.LogMutation("note", "add", note.ID)

	return note, nil
}

// EditNote merges the non-nil fields of req into the matching note.
// A missing id is a silent no-op. Note operations are id-based only;
// positional indexes are never part of the contract.
func (s *Store) EditNote(id string, req ports.UpdateNoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}

		if req.Title != nil {
			s.notes[i].Title = *req.Title
		}
		if req.Content != nil {
			s.notes[i].Content = *req.Content
		}
		if req.Date != nil {
			s.notes[i].Date = *req.Date
		}

		s.persist(ports.KeyNotes, s.notes)

		s.metrics.Mutations.WithLabelValues("note", "edit").Inc()
		s.logger.LogMutation("note", "edit", id)
		return nil
	}

	return nil
}

// DeleteNote removes the matching note from the active collection.
// A missing id is a silent no-op.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.Note, 0, len(s.notes))
	removed := false
	for _, n := range s.notes {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if !removed {
		return nil
	}

	s.notes = kept
	s.persist(ports.KeyNotes, s.notes)

	s.metrics.Mutations.WithLabelValues("note", "delete").Inc()
	s.logger.LogMutation("note", "delete", id)
	return nil
}

// FinishNote moves the matching note to the front of the finished
// archive, stamped with the current time.
func (s *Store) FinishNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i, n := range s.notes {
		if n.ID != id {
			continue
		}

		finished := entities.FinishedNote{
			Note:       n,
			FinishedAt: s.now().UnixMilli(),
		}

		s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
		s.finishedNotes = append([]entities.FinishedNote{finished}, s.finishedNotes...)

		s.persist(ports.KeyNotes, s.notes)
		s.persist(ports.KeyFinishedNotes, s.finishedNotes)

		s.metrics.Mutations.WithLabelValues("note", "finish").Inc()
		s.logger.LogMutation("note", "finish", id)
		return nil
	}

	return nil
}

// DeleteFinishedNote removes the matching note from the finished
// archive. A missing id is a silent no-op.
func (s *Store) DeleteFinishedNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.FinishedNote, 0, len(s.finishedNotes))
	removed := false
	for _, f := range s.finishedNotes {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return nil
	}

	s.finishedNotes = kept
	s.persist(ports.KeyFinishedNotes, s.finishedNotes)

	s.metrics.Mutations.WithLabelValues("note", "delete_finished").Inc()
	s.logger.LogMutation("note", "delete_finished", id)
	return nil
}
