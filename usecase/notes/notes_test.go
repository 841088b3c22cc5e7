package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

type fakeNoteRepo struct {
	failing bool
	notes   map[string]*domain.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*domain.Note{}}
}

func (r *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	var out []domain.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	r.notes[note.ID] = note
	return note, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, id string, patch repository.NotePatch) (*domain.Note, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	return note, nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	if r.failing {
		return errors.New("connection refused")
	}
	if _, ok := r.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeBuffer struct {
	operations []string
}

func (b *fakeBuffer) BufferNote(ctx context.Context, operation string, note *domain.Note) error {
	b.operations = append(b.operations, operation)
	return nil
}

func TestCreateNote(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := New(repo, nil, nil)

	note, err := uc.CreateNote(context.Background(), "admin", "Setlist ideas", "open with the new track")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.ID == "" {
		t.Error("note has no id")
	}
	if _, ok := repo.notes[note.ID]; !ok {
		t.Error("note not persisted")
	}
}

func TestCreateNoteRejectsEmptyTitle(t *testing.T) {
	uc := New(newFakeNoteRepo(), nil, nil)

	if _, err := uc.CreateNote(context.Background(), "admin", "", "body"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("err = %v, want INVALID", err)
	}
}

func TestCreateNoteBuffersWhenRepoIsDown(t *testing.T) {
	repo := newFakeNoteRepo()
	repo.failing = true
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	note, err := uc.CreateNote(context.Background(), "admin", "Offline note", "")
	if err != nil {
		t.Fatalf("create while offline should be buffered, got %v", err)
	}
	if note.CreatedAt.IsZero() {
		t.Error("buffered note has no created_at")
	}
	if len(buf.operations) != 1 || buf.operations[0] != "create" {
		t.Errorf("buffered operations = %v, want [create]", buf.operations)
	}
}

func TestUpdateNoteMissingIsNotBuffered(t *testing.T) {
	buf := &fakeBuffer{}
	uc := New(newFakeNoteRepo(), buf, nil)

	title := "new title"
	_, err := uc.UpdateNote(context.Background(), "ghost", repository.NotePatch{Title: &title})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
	if len(buf.operations) != 0 {
		t.Errorf("a definite not-found must not be buffered, got %v", buf.operations)
	}
}

func TestUpdateNoteRejectsEmptyTitle(t *testing.T) {
	uc := New(newFakeNoteRepo(), nil, nil)

	empty := ""
	if _, err := uc.UpdateNote(context.Background(), "any", repository.NotePatch{Title: &empty}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("err = %v, want INVALID", err)
	}
}

func TestDeleteNoteBuffersWhenRepoIsDown(t *testing.T) {
	repo := newFakeNoteRepo()
	repo.failing = true
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	if err := uc.DeleteNote(context.Background(), "some-id"); err != nil {
		t.Fatalf("delete while offline should be buffered, got %v", err)
	}
	if len(buf.operations) != 1 || buf.operations[0] != "delete" {
		t.Errorf("buffered operations = %v, want [delete]", buf.operations)
	}
}
