package notes

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
	"github.com/agendadesk/backend/usecase"
)

type UseCase struct {
	notes  repository.NoteRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(notes repository.NoteRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		notes:  notes,
		buffer: buffer,
		logger: logger,
	}
}

func (uc *UseCase) ListNotes(ctx context.Context, userID string) ([]domain.Note, error) {
	return uc.notes.ListByUser(ctx, userID)
}

func (uc *UseCase) CreateNote(ctx context.Context, userID, title, content string) (*domain.Note, error) {
	note := &domain.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := note.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.notes.Create(ctx, note)
	if err != nil {
		if uc.shouldBuffer(ctx, "create", note) {
			note.CreatedAt = time.Now()
			note.UpdatedAt = note.CreatedAt
			return note, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) UpdateNote(ctx context.Context, id string, patch repository.NotePatch) (*domain.Note, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	updated, err := uc.notes.Update(ctx, id, patch)
	if err != nil {
		if err == domain.ErrNoteNotFound {
			return nil, err
		}
		note := &domain.Note{ID: id}
		if patch.Title != nil {
			note.Title = *patch.Title
		}
		if patch.Content != nil {
			note.Content = *patch.Content
		}
		if uc.shouldBuffer(ctx, "update", note) {
			note.UpdatedAt = time.Now()
			return note, nil
		}
		return nil, err
	}
	return updated, nil
}

func (uc *UseCase) DeleteNote(ctx context.Context, id string) error {
	if err := uc.notes.Delete(ctx, id); err != nil {
		if err == domain.ErrNoteNotFound {
			return err
		}
		if uc.shouldBuffer(ctx, "delete", &domain.Note{ID: id}) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, note *domain.Note) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferNote(ctx, operation, note); err != nil {
		uc.logger.Error("failed to buffer note operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("note operation buffered", zap.String("operation", operation))
	return true
}
