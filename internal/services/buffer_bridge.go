package services

import (
	"context"
	"encoding/json"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/internal/infrastructure/buffer"
	"github.com/agendadesk/backend/usecase"
)

type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferNote(ctx context.Context, operation string, note *domain.Note) error {
	if b.processor == nil || note == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(note)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        note.ID,
		UserID:    note.UserID,
		Entity:    buffer.EntityNote,
		Operation: operation,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
