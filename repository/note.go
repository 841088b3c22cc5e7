package repository

import (
	"context"

	"github.com/agendadesk/backend/domain"
)

// NotePatch carries a partial update; nil fields are left untouched.
type NotePatch struct {
	Title   *string
	Content *string
}

type NoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, id string, patch NotePatch) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
