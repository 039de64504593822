package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/core/internal/adapters/persistence"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
	"github.com/daybook/core/internal/ports"
)

func newReadyStore(t *testing.T, kv ports.KeyValue) *Store {
	t.Helper()
	s := New(kv, logger.NewNop(), nil)
	require.NoError(t, s.Load(context.Background()))
	require.True(t, s.Ready())
	return s
}

func taskReq(title string) ports.CreateTaskRequest {
	return ports.CreateTaskRequest{
		Title:    title,
		Date:     "2024-05-18",
		Category: entities.CategoryMarketing,
	}
}

func TestLifecycle(t *testing.T) {
	s := New(persistence.NewMemoryKV(), logger.NewNop(), nil)

	assert.Equal(t, StateUninitialized, s.State())
	assert.False(t, s.Ready())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateReady, s.State())

	// Ready is terminal: loading again is an error and the state
	// does not regress.
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateReady, s.State())
}

func TestMutationsBeforeReady(t *testing.T) {
	s := New(persistence.NewMemoryKV(), logger.NewNop(), nil)

	_, err := s.AddTask(taskReq("early"))
	assert.ErrorIs(t, err, entities.ErrNotReady)
	assert.ErrorIs(t, s.DeleteTask("x"), entities.ErrNotReady)
	assert.ErrorIs(t, s.FinishTask("x"), entities.ErrNotReady)
	assert.ErrorIs(t, s.UpdateProfile(entities.Profile{}), entities.ErrNotReady)
}

func TestLoadReadFailureUsesDefaults(t *testing.T) {
	kv := persistence.NewMemoryKV()
	kv.FailGet = func(key string) error {
		if key == ports.KeyTasks || key == ports.KeyProfile {
			return errors.New("disk unhappy")
		}
		return nil
	}

	s := newReadyStore(t, kv)

	assert.Empty(t, s.Tasks())
	assert.Equal(t, entities.DefaultProfile(), s.Profile())
}

func TestLoadUndecodableValueUsesDefaults(t *testing.T) {
	kv := persistence.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), ports.KeyNotes, []byte("not json")))

	s := newReadyStore(t, kv)
	assert.Empty(t, s.Notes())
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := persistence.NewMemoryKV()
	metrics := NewMetrics(nil)

	s := New(kv, logger.NewNop(), metrics)
	require.NoError(t, s.Load(context.Background()))

	kv.FailSet = func(key string) error {
		return errors.New("disk full")
	}

	task, err := s.AddTask(taskReq("survives"))
	require.NoError(t, err)
	s.Flush()

	// Memory leads durable state: the task is visible even though
	// the write never landed.
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)

	_, err = kv.Get(context.Background(), ports.KeyTasks)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	failed := testutil.ToFloat64(metrics.PersistFailures.WithLabelValues(ports.KeyTasks))
	assert.Equal(t, 1.0, failed)
}

func TestRestartRoundTrip(t *testing.T) {
	kv := persistence.NewMemoryKV()

	s1 := newReadyStore(t, kv)

	milk, err := s1.AddTask(taskReq("Buy milk"))
	require.NoError(t, err)
	bread, err := s1.AddTask(taskReq("Buy bread"))
	require.NoError(t, err)

	_, err = s1.AddProject(ports.CreateProjectRequest{
		Title:     "Spring cleaning",
		StartDate: "2024-05-01",
		EndDate:   "2024-06-01",
		Status:    entities.ProjectStatusInProgress,
	})
	require.NoError(t, err)

	note, err := s1.AddNote(ports.CreateNoteRequest{
		Title:   "Idea",
		Content: "write it down",
		Date:    "2024-05-18",
	})
	require.NoError(t, err)

	newTitle := "Buy oat milk"
	require.NoError(t, s1.EditTask(milk.ID, ports.UpdateTaskRequest{Title: &newTitle}))
	require.NoError(t, s1.FinishTask(bread.ID))
	require.NoError(t, s1.UpdateProfile(entities.Profile{Name: "A", Email: "a@x.com", PhotoIndex: 2}))
	s1.Flush()

	// Simulated restart: a fresh store over the same storage.
	s2 := newReadyStore(t, kv)

	assert.Equal(t, s1.Tasks(), s2.Tasks())
	assert.Equal(t, s1.FinishedTasks(), s2.FinishedTasks())
	assert.Equal(t, s1.Projects(), s2.Projects())
	assert.Equal(t, s1.Notes(), s2.Notes())
	assert.Equal(t, entities.Profile{Name: "A", Email: "a@x.com", PhotoIndex: 2}, s2.Profile())

	require.Len(t, s2.Tasks(), 1)
	assert.Equal(t, "Buy oat milk", s2.Tasks()[0].Title)
	require.Len(t, s2.Notes(), 1)
	assert.Equal(t, note.ID, s2.Notes()[0].ID)
}

func TestProfileReplaceEntirely(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	require.NoError(t, s.UpdateProfile(entities.Profile{Name: "First", Email: "first@x.com", PhotoIndex: 1}))
	require.NoError(t, s.UpdateProfile(entities.Profile{Name: "A", Email: "a@x.com", PhotoIndex: 2}))

	assert.Equal(t, entities.Profile{Name: "A", Email: "a@x.com", PhotoIndex: 2}, s.Profile())
}

func TestEndToEndScenario(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())
	start := time.Now().UnixMilli()

	task, err := s.AddTask(ports.CreateTaskRequest{
		Title:    "Buy milk",
		Date:     "2024-05-18",
		Category: entities.CategoryMarketing,
	})
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2024-05-18", tasks[0].Date)
	assert.Equal(t, entities.CategoryMarketing, tasks[0].Category)
	assert.NotEmpty(t, tasks[0].ID)

	require.NoError(t, s.FinishTask(task.ID))
	assert.Empty(t, s.Tasks())

	finished := s.FinishedTasks()
	require.Len(t, finished, 1)
	assert.Equal(t, task.ID, finished[0].ID)
	assert.GreaterOrEqual(t, finished[0].FinishedAt, start)
	assert.LessOrEqual(t, finished[0].FinishedAt, time.Now().UnixMilli())

	require.NoError(t, s.DeleteFinishedTask(task.ID))
	assert.Empty(t, s.FinishedTasks())
}
