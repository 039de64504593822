// Package store holds the single authoritative in-memory state for all
// of the application's entities. Every mutation updates memory
// synchronously and mirrors the whole affected collection to durable
// key-value storage on a background write that is never awaited.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
	"github.com/daybook/core/internal/ports"
)

// RetentionWindow bounds how long finished items stay visible. Items
// older than this are hidden from reads but not purged from storage.
const RetentionWindow = 3 * 24 * time.Hour

// State models the store lifecycle. Ready is terminal for the process
// lifetime; there is no transition back to Loading.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Store owns all application state and its persistence mirror.
type Store struct {
	kv      ports.KeyValue
	logger  *logger.Logger
	metrics *Metrics

	now func() time.Time

	mu               sync.RWMutex
	state            State
	tasks            []entities.Task
	finishedTasks    []entities.FinishedTask
	projects         []entities.Project
	finishedProjects []entities.FinishedProject
	notes            []entities.Note
	finishedNotes    []entities.FinishedNote
	profile          entities.Profile

	writes sync.WaitGroup
}

// New creates a store backed by kv. The store starts uninitialized;
// call Load before issuing any reads or mutations. A nil metrics
// registers on a private throwaway registry.
func New(kv ports.KeyValue, appLogger *logger.Logger, metrics *Metrics) *Store {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Store{
		kv:      kv,
		logger:  appLogger.WithComponent("store"),
		metrics: metrics,
		now:     time.Now,
		profile: entities.DefaultProfile(),
	}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether all initial reads have settled.
func (s *Store) Ready() bool {
	return s.State() == StateReady
}

// Load issues the seven persistence reads concurrently and transitions
// the store to Ready once all of them settle. Any individual failure
// is logged and the collection starts empty (the profile starts at its
// default). Bound ctx with a timeout to keep a hung read from blocking
// readiness forever.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return fmt.Errorf("store already loaded (state %s)", s.state)
	}
	s.state = StateLoading
	s.mu.Unlock()

	var (
		tasks            []entities.Task
		finishedTasks    []entities.FinishedTask
		projects         []entities.Project
		finishedProjects []entities.FinishedProject
		notes            []entities.Note
		finishedNotes    []entities.FinishedNote
		profile          = entities.DefaultProfile()
	)

	var g errgroup.Group
	g.Go(func() error { s.loadValue(ctx, ports.KeyTasks, &tasks); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyFinishedTasks, &finishedTasks); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyProjects, &projects); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyFinishedProjects, &finishedProjects); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyNotes, &notes); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyFinishedNotes, &finishedNotes); return nil })
	g.Go(func() error { s.loadValue(ctx, ports.KeyProfile, &profile); return nil })

	// Readiness waits for all seven reads regardless of individual
	// success or failure, so the group error is always nil.
	_ = g.Wait()

	s.mu.Lock()
	s.tasks = tasks
	s.finishedTasks = finishedTasks
	s.projects = projects
	s.finishedProjects = finishedProjects
	s.notes = notes
	s.finishedNotes = finishedNotes
	s.profile = profile
	s.state = StateReady
	s.mu.Unlock()

	s.logger.Infow("Store ready",
		"tasks", len(tasks),
		"finished_tasks", len(finishedTasks),
		"projects", len(projects),
		"finished_projects", len(finishedProjects),
		"notes", len(notes),
		"finished_notes", len(finishedNotes),
	)

	return nil
}

// loadValue reads and decodes one persistence key into dest. Every
// failure mode, including an undecodable payload, degrades to "no
// stored value": dest is left at its default.
func (s *Store) loadValue(ctx context.Context, key string, dest interface{}) {
	data, err := s.kv.Get(ctx, key)
	if err == ports.ErrKeyNotFound {
		s.logger.Debugw("No stored value", "key", key)
		return
	}
	if err != nil {
		s.logger.Warnw("Persistence read failed, using default", "key", key, "error", err)
		s.metrics.LoadMisses.WithLabelValues(key).Inc()
		return
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warnw("Stored value undecodable, using default", "key", key, "error", err)
		s.metrics.LoadMisses.WithLabelValues(key).Inc()
	}
}

// persist serializes v and writes it under key on a background
// goroutine. The caller must hold the write lock so the serialized
// snapshot cannot interleave with another mutation. Failures are
// logged and counted, never surfaced, never rolled back.
func (s *Store) persist(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.LogPersistenceFailure(key, err)
		s.metrics.PersistFailures.WithLabelValues(key).Inc()
		return
	}

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.kv.Set(context.Background(), key, data); err != nil {
			s.logger.LogPersistenceFailure(key, err)
			s.metrics.PersistFailures.WithLabelValues(key).Inc()
		}
	}()
}

// Flush blocks until all in-flight persistence writes have settled.
// Call before process exit so the durable state catches up with memory.
func (s *Store) Flush() {
	s.writes.Wait()
}

// requireReady gates mutations; callers must hold at least the read
// side of the mutex.
func (s *Store) requireReady() error {
	if s.state != StateReady {
		return entities.ErrNotReady
	}
	return nil
}

// cutoff returns the oldest finish-time, in epoch milliseconds, that
// is still visible through the retention filter.
func (s *Store) cutoff() int64 {
	return s.now().UnixMilli() - RetentionWindow.Milliseconds()
}
