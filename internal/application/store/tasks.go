package store

import (
	"github.com/google/uuid"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// Tasks returns the active tasks, most recent first. The full history
// is exposed; no filtering applies to active collections.
func (s *Store) Tasks() []entities.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// FinishedTasks returns the finished archive through the retention
// filter: only items finished within RetentionWindow of now are
// visible. The filter is recomputed on every call, never stored.
func (s *Store) FinishedTasks() []entities.FinishedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.cutoff()
	out := make([]entities.FinishedTask, 0, len(s.finishedTasks))
	for _, f := range s.finishedTasks {
		if f.FinishedAt > cutoff {
			out = append(out, f)
		}
	}
	return out
}

// AddTask creates a task with a fresh unique id and prepends it to the
// active collection.
func (s *Store) AddTask(req ports.CreateTaskRequest) (entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return entities.Task{}, err
	}

	task := entities.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
	}

	s.tasks = append([]entities.Task{task}, s.tasks...)
	s.persist(ports.KeyTasks, s.tasks)

	s.metrics.Mutations.WithLabelValues("task", "add").Inc()
	s.logger.LogMutation("task", "add", task.ID)

	return task, nil
}

// EditTask merges the non-nil fields of req into the matching task.
// A missing id is a silent no-op.
func (s *Store) EditTask(id string, req ports.UpdateTaskRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		if req.Title != nil {
			s.tasks[i].Title = *req.Title
		}
		if req.Date != nil {
			s.tasks[i].Date = *req.Date
		}
		if req.Description != nil {
			s.tasks[i].Description = *req.Description
		}
		if req.Category != nil {
			s.tasks[i].Category = *req.Category
		}

		s.persist(ports.KeyTasks, s.tasks)

		s.metrics.Mutations.WithLabelValues("task", "edit").Inc()
		s.logger.LogMutation("task", "edit", id)
		return nil
	}

	return nil
}

// DeleteTask removes the matching task from the active collection.
// A missing id is a silent no-op.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.Task, 0, len(s.tasks))
	removed := false
	for _, t := range s.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return nil
	}

	s.tasks = kept
	s.persist(ports.KeyTasks, s.tasks)

	s.metrics.Mutations.WithLabelValues("task", "delete").Inc()
	s.logger.LogMutation("task", "delete", id)
	return nil
}

// FinishTask moves the matching task from the active collection to the
// front of the finished archive, stamped with the current time. The
// move is atomic from the caller's perspective: the item is never in
// both collections, and the remaining active items keep their order.
func (s *Store) FinishTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}

		finished := entities.FinishedTask{
			Task:       t,
			FinishedAt: s.now().UnixMilli(),
		}

		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
		s.finishedTasks = append([]entities.FinishedTask{finished}, s.finishedTasks...)

		s.persist(ports.KeyTasks, s.tasks)
		s.persist(ports.KeyFinishedTasks, s.finishedTasks)

		s.metrics.Mutations.WithLabelValues("task", "finish").Inc()
		s.logger.LogMutation("task", "finish", id)
		return nil
	}

	return nil
}

// DeleteFinishedTask removes the matching task from the finished
// archive. A missing id is a silent no-op.
func (s *Store) DeleteFinishedTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.FinishedTask, 0, len(s.finishedTasks))
	removed := false
	for _, f := range s.finishedTasks {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return nil
	}

	s.finishedTasks = kept
	s.persist(ports.KeyFinishedTasks, s.finishedTasks)

	s.metrics.Mutations.WithLabelValues("task", "delete_finished").Inc()
	s.logger.LogMutation("task", "delete_finished", id)
	return nil
}
