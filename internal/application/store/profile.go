package store

import (
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// Profile returns the current profile record.
func (s *Store) Profile() entities.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile replaces the entire profile record. The latest write
// wins; there is no partial merge and no history.
func (s *Store) UpdateProfile(p entities.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	s.profile = p
	s.persist(ports.KeyProfile, s.profile)

	s.metrics.Mutations.WithLabelValues("profile", "update").Inc()
	s.logger.LogMutation("profile", "update", "")
	return nil
}
