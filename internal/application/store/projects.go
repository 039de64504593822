package store

import (
	"github.com/google/uuid"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// Projects returns the active projects, most recent first.
func (s *Store) Projects() []entities.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// FinishedProjects returns the finished archive through the retention
// filter.
func (s *Store) FinishedProjects() []entities.FinishedProject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.cutoff()
	out := make([]entities.FinishedProject, 0, len(s.finishedProjects))
	for _, f := range s.finishedProjects {
		if f.FinishedAt > cutoff {
			out = append(out, f)
		}
	}
	return out
}

// AddProject creates a project with a fresh unique id and prepends it
// to the active collection.
func (s *Store) AddProject(req ports.CreateProjectRequest) (entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return entities.Project{}, err
	}

	project := entities.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	}

	s.projects = append([]entities.Project{project}, s.projects...)
	s.persist(ports.KeyProjects, s.projects)

	s.metrics.Mutations.WithLabelValues("project", "add").Inc()
	s.logger.LogMutation("project", "add", project.ID)

	return project, nil
}

// EditProject merges the non-nil fields of req into the matching
// project. A missing id is a silent no-op.
func (s *Store) EditProject(id string, req ports.UpdateProjectRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}

		if req.Title != nil {
			s.projects[i].Title = *req.Title
		}
		if req.Description != nil {
			s.projects[i].Description = *req.Description
		}
		if req.StartDate != nil {
			s.projects[i].StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			s.projects[i].EndDate = *req.EndDate
		}
		if req.Status != nil {
			s.projects[i].Status = *req.Status
		}

		s.persist(ports.KeyProjects, s.projects)

		s.metrics.Mutations.WithLabelValues("project", "edit").Inc()
		s.logger.LogMutation("project", "edit", id)
		return nil
	}

	return nil
}

// DeleteProject removes the matching project from the active
// collection. A missing id is a silent no-op.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.Project, 0, len(s.projects))
	removed := false
	for _, p := range s.projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}

	s.projects = kept
	s.persist(ports.KeyProjects, s.projects)

	s.metrics.Mutations.WithLabelValues("project", "delete").Inc()
	s.logger.LogMutation("project", "delete", id)
	return nil
}

// FinishProject moves the matching project to the front of the
// finished archive, stamped with the current time.
func (s *Store) FinishProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	for i, p := range s.projects {
		if p.ID != id {
			continue
		}

		finished := entities.FinishedProject{
			Project:    p,
			FinishedAt: s.now().UnixMilli(),
		}

		s.projects = append(s.projects[:i:i], s.projects[i+1:]...)
		s.finishedProjects = append([]entities.FinishedProject{finished}, s.finishedProjects...)

		s.persist(ports.KeyProjects, s.projects)
		s.persist(ports.KeyFinishedProjects, s.finishedProjects)

		s.metrics.Mutations.WithLabelValues("project", "finish").Inc()
		s.logger.LogMutation("project", "finish", id)
		return nil
	}

	return nil
}

// DeleteFinishedProject removes the matching project from the finished
// archive. A missing id is a silent no-op.
func (s *Store) DeleteFinishedProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	kept := make([]entities.FinishedProject, 0, len(s.finishedProjects))
	removed := false
	for _, f := range s.finishedProjects {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return nil
	}

	s.finishedProjects = kept
	s.persist(ports.KeyFinishedProjects, s.finishedProjects)

	s.metrics.Mutations.WithLabelValues("project", "delete_finished").Inc()
	s.logger.LogMutation("project", "delete_finished", id)
	return nil
}
