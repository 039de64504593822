package store

import "sort"

// AgendaItem is one upcoming entry on the dashboard, regardless of
// entity kind.
type AgendaItem struct {
	Kind  string `json:"kind"` // task, project or note
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Overview is the day dashboard: how much is scheduled for the given
// day, plus the next few upcoming items of any kind.
type Overview struct {
	Date          string       `json:"date"`
	TasksToday    int          `json:"tasksToday"`
	ProjectsToday int          `json:"projectsToday"`
	NotesToday    int          `json:"notesToday"`
	Upcoming      []AgendaItem `json:"upcoming"`
}

// Badge is an achievement earned from finished-item counts.
type Badge struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Stats summarizes activity for the profile screen. Finished counts
// reflect what the retention filter exposes, not raw storage.
type Stats struct {
	ActiveTasks      int     `json:"activeTasks"`
	FinishedTasks    int     `json:"finishedTasks"`
	ActiveProjects   int     `json:"activeProjects"`
	FinishedProjects int     `json:"finishedProjects"`
	ActiveNotes      int     `json:"activeNotes"`
	FinishedNotes    int     `json:"finishedNotes"`
	Badges           []Badge `json:"badges"`
}

// upcomingLimit caps the dashboard agenda at the next few items.
const upcomingLimit = 3

// Overview computes the dashboard for the given calendar day
// (YYYY-MM-DD). Projects count toward the day when they start or end
// on it; the upcoming agenda lists items dated today or later in
// date-ascending order, projects by their start date.
func (s *Store) Overview(today string) Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ov := Overview{Date: today}

	items := make([]AgendaItem, 0, len(s.tasks)+len(s.projects)+len(s.notes))

	for _, t := range s.tasks {
		if t.Date == today {
			ov.TasksToday++
		}
		items = append(items, AgendaItem{Kind: "task", ID: t.ID, Title: t.Title, Date: t.Date})
	}
	for _, p := range s.projects {
		if p.StartDate == today || p.EndDate == today {
			ov.ProjectsToday++
		}
		items = append(items, AgendaItem{Kind: "project", ID: p.ID, Title: p.Title, Date: p.StartDate})
	}
	for _, n := range s.notes {
		if n.Date == today {
			ov.NotesToday++
		}
		items = append(items, AgendaItem{Kind: "note", ID: n.ID, Title: n.Title, Date: n.Date})
	}

	upcoming := items[:0]
	for _, item := range items {
		if item.Date >= today {
			upcoming = append(upcoming, item)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	ov.Upcoming = upcoming

	return ov
}

// Stats computes the activity summary and earned badges.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	cutoff := s.cutoff()

	st := Stats{
		ActiveTasks:    len(s.tasks),
		ActiveProjects: len(s.projects),
		ActiveNotes:    len(s.notes),
	}
	for _, f := range s.finishedTasks {
		if f.FinishedAt > cutoff {
			st.FinishedTasks++
		}
	}
	for _, f := range s.finishedProjects {
		if f.FinishedAt > cutoff {
			st.FinishedProjects++
		}
	}
	for _, f := range s.finishedNotes {
		if f.FinishedAt > cutoff {
			st.FinishedNotes++
		}
	}
	s.mu.RUnlock()

	if st.FinishedTasks >= 10 {
		st.Badges = append(st.Badges, Badge{Icon: "🏅", Label: "10 Tasks Completed"})
	}
	if st.FinishedProjects >= 5 {
		st.Badges = append(st.Badges, Badge{Icon: "🎖️", Label: "5 Projects Completed"})
	}
	if st.FinishedNotes >= 10 {
		st.Badges = append(st.Badges, Badge{Icon: "📝", Label: "10 Notes Taken"})
	}
	if st.FinishedTasks >= 1 && st.FinishedProjects >= 1 && st.FinishedNotes >= 1 {
		st.Badges = append(st.Badges, Badge{Icon: "🌟", Label: "All-Rounder"})
	}

	return st
}

// LastFinished returns the most recently finished item of each kind
// that is still inside the retention window, keyed by kind. Kinds with
// nothing visible are absent from the map.
func (s *Store) LastFinished() map[string]AgendaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.cutoff()
	out := make(map[string]AgendaItem)

	for _, f := range s.finishedTasks {
		if f.FinishedAt > cutoff {
			out["task"] = AgendaItem{Kind: "task", ID: f.ID, Title: f.Title, Date: f.Date}
			break
		}
	}
	for _, f := range s.finishedProjects {
		if f.FinishedAt > cutoff {
			out["project"] = AgendaItem{Kind: "project", ID: f.ID, Title: f.Title, Date: f.StartDate}
			break
		}
	}
	for _, f := range s.finishedNotes {
		if f.FinishedAt > cutoff {
			out["note"] = AgendaItem{Kind: "note", ID: f.ID, Title: f.Title, Date: f.Date}
			break
		}
	}

	return out
}
