package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

type noteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository returns a Postgres-backed implementation of NoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) repository.NoteRepository {
	return &noteRepository{pool: pool}
}

func (r *noteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	const query = `
	SELECT id, user_id, title, content, created_at, updated_at
	FROM notes
	WHERE user_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if note == nil {
		return nil, domain.ErrInvalidPayload
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO notes (id, user_id, title, content)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.UserID,
		note.Title,
		nullString(note.Content),
	).Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepository) Update(ctx context.Context, id string, patch repository.NotePatch) (*domain.Note, error) {
	const query = `
	UPDATE notes
	SET title = COALESCE($2, title),
		content = COALESCE($3, content),
		updated_at = NOW()
	WHERE id = $1
	RETURNING id, user_id, title, content, created_at, updated_at
	`
	note, err := scanNote(r.pool.QueryRow(ctx, query, id, patch.Title, patch.Content))
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM notes WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func scanNote(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Note, error) {
	var note domain.Note
	var content *string
	if err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&content,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	note.Content = deref(content)
	return &note, nil
}
