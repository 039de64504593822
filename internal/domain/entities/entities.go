package entities

import "errors"

// Common errors
var (
	ErrNotReady = errors.New("store is not ready")
)

// Category labels a task. The set is open: unknown labels are stored
// as-is and render with a fallback emoji.
type Category string

const (
	CategoryMeeting     Category = "Meeting"
	CategoryUIDesign    Category = "UI Design"
	CategoryDevelopment Category = "Development"
	CategoryMarketing   Category = "Marketing"
)

type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "Planned"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Task represents a single to-do item scheduled for a calendar day.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
}

// Project represents a longer-running effort spanning a date range.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	StartDate   string        `json:"startDate"` // YYYY-MM-DD
	EndDate     string        `json:"endDate"`   // YYYY-MM-DD
	Status      ProjectStatus `json:"status"`
}

// Note represents a free-form note dated to a calendar day.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// Finished variants carry the instant the item was archived, in epoch
// milliseconds. The embedded entity keeps its original id.
type FinishedTask struct {
	Task
	FinishedAt int64 `json:"finishedAt"`
}

type FinishedProject struct {
	Project
	FinishedAt int64 `json:"finishedAt"`
}

type FinishedNote struct {
	Note
	FinishedAt int64 `json:"finishedAt"`
}

// Profile is the singleton user record. PhotoIndex selects one of the
// built-in avatar choices.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	PhotoIndex int    `json:"photoIdx"`
}

// DefaultProfile is the profile a fresh installation starts with.
func DefaultProfile() Profile {
	return Profile{
		Name:       "Mustafa",
		Email:      "mustafa@example.com",
		PhotoIndex: 0,
	}
}

var categoryEmojis = map[Category]string{
	CategoryMeeting:     "📅",
	CategoryUIDesign:    "🎨",
	CategoryDevelopment: "💻",
	CategoryMarketing:   "📢",
}

// Emoji returns the display emoji for the category, with a generic
// fallback for labels outside the known set.
func (c Category) Emoji() string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return "🗂️"
}

// Utility methods
func (c Category) IsValid() bool {
	switch c {
	case CategoryMeeting, CategoryUIDesign, CategoryDevelopment, CategoryMarketing:
		return true
	default:
		return false
	}
}

func (ps ProjectStatus) IsValid() bool {
	switch ps {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}
