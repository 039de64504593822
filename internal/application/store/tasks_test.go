package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/core/internal/adapters/persistence"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

func TestAddTaskIDsAreUnique(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	// Rapid successive adds, well inside one millisecond for at
	// least some pairs.
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		task, err := s.AddTask(taskReq("t"))
		require.NoError(t, err)
		require.False(t, seen[task.ID], "duplicate id %q", task.ID)
		seen[task.ID] = true
	}
}

func TestAddTaskPrependsMostRecentFirst(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	first, _ := s.AddTask(taskReq("first"))
	second, _ := s.AddTask(taskReq("second"))
	third, _ := s.AddTask(taskReq("third"))

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, third.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, first.ID, tasks[2].ID)
}

func TestEditTaskPartialMerge(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	task, _ := s.AddTask(ports.CreateTaskRequest{
		Title:       "Draft report",
		Date:        "2024-05-18",
		Description: "first pass",
		Category:    entities.CategoryDevelopment,
	})

	newTitle := "Draft final report"
	require.NoError(t, s.EditTask(task.ID, ports.UpdateTaskRequest{Title: &newTitle}))

	got := s.Tasks()[0]
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Draft final report", got.Title)
	// Untouched fields survive the merge.
	assert.Equal(t, "2024-05-18", got.Date)
	assert.Equal(t, "first pass", got.Description)
	assert.Equal(t, entities.CategoryDevelopment, got.Category)
}

func TestFinishTaskMovesNotCopies(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	a, _ := s.AddTask(taskReq("a"))
	b, _ := s.AddTask(taskReq("b"))
	c, _ := s.AddTask(taskReq("c"))

	require.NoError(t, s.FinishTask(b.ID))

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	// Remaining items keep their relative order.
	assert.Equal(t, c.ID, tasks[0].ID)
	assert.Equal(t, a.ID, tasks[1].ID)

	finished := s.FinishedTasks()
	require.Len(t, finished, 1)
	assert.Equal(t, b.ID, finished[0].ID)
	assert.Equal(t, b.Title, finished[0].Title)
	assert.NotZero(t, finished[0].FinishedAt)
}

func TestMissingIDIsNoOp(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	task, _ := s.AddTask(taskReq("only"))
	title := "x"

	require.NoError(t, s.DeleteTask("nope"))
	require.NoError(t, s.EditTask("nope", ports.UpdateTaskRequest{Title: &title}))
	require.NoError(t, s.FinishTask("nope"))
	require.NoError(t, s.DeleteFinishedTask("nope"))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "only", tasks[0].Title)
	assert.Empty(t, s.FinishedTasks())
}

func TestRetentionBoundary(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	base := time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	task, _ := s.AddTask(taskReq("boundary"))
	require.NoError(t, s.FinishTask(task.ID))
	require.Equal(t, base.UnixMilli(), s.FinishedTasks()[0].FinishedAt)

	window := RetentionWindow

	// 1ms inside the window: visible.
	s.now = func() time.Time { return base.Add(window - time.Millisecond) }
	assert.Len(t, s.FinishedTasks(), 1)

	// Exactly at the window: hidden (strictly-less-than contract).
	s.now = func() time.Time { return base.Add(window) }
	assert.Empty(t, s.FinishedTasks())

	// 1ms past the window: hidden, and it stays hidden.
	s.now = func() time.Time { return base.Add(window + time.Millisecond) }
	assert.Empty(t, s.FinishedTasks())
}

func TestAgedOutItemsStayInStorage(t *testing.T) {
	kv := persistence.NewMemoryKV()
	s := newReadyStore(t, kv)

	base := time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	task, _ := s.AddTask(taskReq("ages out"))
	require.NoError(t, s.FinishTask(task.ID))
	s.Flush()

	s.now = func() time.Time { return base.Add(RetentionWindow * 2) }
	assert.Empty(t, s.FinishedTasks())

	// The retention filter is read-side only: a restart still loads
	// the hidden item from storage.
	s2 := newReadyStore(t, kv)
	s2.now = func() time.Time { return base.Add(time.Hour) }
	require.Len(t, s2.FinishedTasks(), 1)
	assert.Equal(t, task.ID, s2.FinishedTasks()[0].ID)
}
