package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Status is the workflow state of an agenda item.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// StatusOrder fixes the kanban column order for the status dimension.
var StatusOrder = []Status{StatusTodo, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority ranks an agenda item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityOrder fixes the kanban column order for the priority dimension.
var PriorityOrder = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Category partitions items between the personal agenda and the content plan.
type Category string

const (
	CategoryInstagram    Category = "instagram"
	CategoryMusicProject Category = "music_project"
	CategorySetRelease   Category = "set_release"
	CategoryEvent        Category = "event"
	CategoryPersonal     Category = "personal"
)

// CategoryOrder fixes the kanban column order for the category dimension.
var CategoryOrder = []Category{
	CategoryInstagram,
	CategoryMusicProject,
	CategorySetRelease,
	CategoryEvent,
	CategoryPersonal,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryInstagram, CategoryMusicProject, CategorySetRelease, CategoryEvent, CategoryPersonal:
		return true
	}
	return false
}

// IsPersonal reports whether items of this category belong to the personal agenda
// collection rather than the content plan.
func (c Category) IsPersonal() bool {
	return c == CategoryPersonal
}

// AgendaItem is a schedulable unit of work: a personal appointment or a
// content-plan task, depending on its category.
type AgendaItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Date          string   `json:"date"`
	Time          string   `json:"time,omitempty"`
	Status        Status   `json:"status"`
	Priority      Priority `json:"priority"`
	Category      Category `json:"category"`
	SharedWithDJs bool     `json:"shared_with_djs,omitempty"`
	DJID          string   `json:"dj_id,omitempty"`
}

// NewItemID builds a collision-resistant identifier that keeps the category
// prefix of the legacy id scheme.
func NewItemID(category Category) string {
	return fmt.Sprintf("%s-%s", category, uuid.NewString())
}

// Normalize applies the documented defaults for zero-valued fields.
func (i *AgendaItem) Normalize() {
	if i == nil {
		return
	}
	if i.Status == "" {
		i.Status = StatusTodo
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
	if i.Category == "" {
		i.Category = CategoryPersonal
	}
}

// Validate rejects items that must never reach a collection.
func (i *AgendaItem) Validate() error {
	if i == nil {
		return ErrInvalidPayload
	}
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if !i.Status.Valid() {
		return NewError(ErrCodeInvalid, fmt.Sprintf("unknown status %q", i.Status))
	}
	if !i.Priority.Valid() {
		return NewError(ErrCodeInvalid, fmt.Sprintf("unknown priority %q", i.Priority))
	}
	if !i.Category.Valid() {
		return NewError(ErrCodeInvalid, fmt.Sprintf("unknown category %q", i.Category))
	}
	return nil
}
