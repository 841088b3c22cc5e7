package usecase

import (
	"context"

	"github.com/agendadesk/backend/domain"
)

// OperationBuffer abstracts the offline buffer so use cases stay storage-agnostic.
type OperationBuffer interface {
	BufferNote(ctx context.Context, operation string, note *domain.Note) error
}
