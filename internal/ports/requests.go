package ports

import "github.com/daybook/core/internal/domain/entities"

// Task related types
type CreateTaskRequest struct {
	Title       string            `json:"title" validate:"required,max=500"`
	Date        string            `json:"date" validate:"required,datetime=2006-01-02"`
	Description string            `json:"description" validate:"omitempty,max=2000"`
	Category    entities.Category `json:"category" validate:"required"`
}

// UpdateTaskRequest carries a partial merge: nil fields are left
// unchanged. The id itself is never mutable.
type UpdateTaskRequest struct {
	Title       *string            `json:"title" validate:"omitempty,max=500"`
	Date        *string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description *string            `json:"description" validate:"omitempty,max=2000"`
	Category    *entities.Category `json:"category"`
}

// Project related types
type CreateProjectRequest struct {
	Title       string                 `json:"title" validate:"required,max=500"`
	Description string                 `json:"description" validate:"omitempty,max=2000"`
	StartDate   string                 `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string                 `json:"endDate" validate:"required,datetime=2006-01-02"`
	Status      entities.ProjectStatus `json:"status" validate:"required"`
}

type UpdateProjectRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,max=500"`
	Description *string                 `json:"description" validate:"omitempty,max=2000"`
	StartDate   *string                 `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string                 `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *entities.ProjectStatus `json:"status"`
}

// Note related types
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=500"`
	Content *string `json:"content" validate:"omitempty"`
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProfileRequest replaces the whole profile record; there is no
// partial profile merge.
type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email"`
	PhotoIndex int    `json:"photoIdx" validate:"min=0,max=5"`
}
