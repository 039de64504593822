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

func TestOverview(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())
	today := "2024-05-18"

	s.AddTask(ports.CreateTaskRequest{Title: "due today", Date: today, Category: entities.CategoryMeeting})
	s.AddTask(ports.CreateTaskRequest{Title: "due later", Date: "2024-05-20", Category: entities.CategoryMeeting})
	s.AddTask(ports.CreateTaskRequest{Title: "overdue", Date: "2024-05-10", Category: entities.CategoryMeeting})

	s.AddProject(ports.CreateProjectRequest{
		Title: "ends today", StartDate: "2024-05-01", EndDate: today,
		Status: entities.ProjectStatusInProgress,
	})
	s.AddNote(ports.CreateNoteRequest{Title: "note today", Content: "x", Date: today})

	ov := s.Overview(today)

	assert.Equal(t, 1, ov.TasksToday)
	assert.Equal(t, 1, ov.ProjectsToday)
	assert.Equal(t, 1, ov.NotesToday)

	// Upcoming is date-ascending, today-or-later only, capped.
	// "overdue" and the project (start date in the past) are out.
	require.Len(t, ov.Upcoming, 3)
	assert.Equal(t, today, ov.Upcoming[0].Date)
	assert.Equal(t, today, ov.Upcoming[1].Date)
	assert.Equal(t, "2024-05-20", ov.Upcoming[2].Date)
}

func TestOverviewUpcomingLimit(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	for i := 0; i < 5; i++ {
		s.AddTask(ports.CreateTaskRequest{Title: "t", Date: "2024-05-19", Category: entities.CategoryMeeting})
	}

	ov := s.Overview("2024-05-18")
	assert.Len(t, ov.Upcoming, upcomingLimit)
}

func TestStatsBadges(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	for i := 0; i < 10; i++ {
		task, _ := s.AddTask(taskReq("t"))
		require.NoError(t, s.FinishTask(task.ID))
	}
	p, _ := s.AddProject(projectReq("p"))
	require.NoError(t, s.FinishProject(p.ID))
	n, _ := s.AddNote(noteReq("n"))
	require.NoError(t, s.FinishNote(n.ID))

	st := s.Stats()
	assert.Equal(t, 10, st.FinishedTasks)
	assert.Equal(t, 1, st.FinishedProjects)
	assert.Equal(t, 1, st.FinishedNotes)

	labels := make([]string, 0, len(st.Badges))
	for _, b := range st.Badges {
		labels = append(labels, b.Label)
	}
	assert.Contains(t, labels, "10 Tasks Completed")
	assert.Contains(t, labels, "All-Rounder")
	assert.NotContains(t, labels, "5 Projects Completed")
}

func TestStatsRespectRetention(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	base := time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	task, _ := s.AddTask(taskReq("old"))
	require.NoError(t, s.FinishTask(task.ID))

	s.now = func() time.Time { return base.Add(RetentionWindow + time.Hour) }
	st := s.Stats()
	assert.Zero(t, st.FinishedTasks)
	assert.Empty(t, s.LastFinished())
}

func TestLastFinished(t *testing.T) {
	s := newReadyStore(t, persistence.NewMemoryKV())

	first, _ := s.AddTask(taskReq("first done"))
	require.NoError(t, s.FinishTask(first.ID))
	second, _ := s.AddTask(taskReq("second done"))
	require.NoError(t, s.FinishTask(second.ID))

	last := s.LastFinished()
	require.Contains(t, last, "task")
	assert.Equal(t, "second done", last["task"].Title)
	assert.NotContains(t, last, "project")
}
