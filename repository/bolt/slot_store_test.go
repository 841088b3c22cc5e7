package bolt

import (
	"path/filepath"
	"testing"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

func openTestStore(t *testing.T) *SlotStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "slots.db"), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSlotStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := []domain.AgendaItem{
		{ID: "personal-1", Title: "Dentist", Date: "2026-09-15", Status: domain.StatusTodo, Priority: domain.PriorityMedium, Category: domain.CategoryPersonal},
	}
	if err := store.Save(repository.SlotPersonalItems, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []domain.AgendaItem
	if err := store.Load(repository.SlotPersonalItems, &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSlotStoreMissingSlot(t *testing.T) {
	store := openTestStore(t)

	var out []domain.AgendaItem
	err := store.Load("never-written", &out)
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

func TestSlotStoreCorruptBlob(t *testing.T) {
	store := openTestStore(t)

	// A string blob cannot decode into a slice of items.
	if err := store.Save(repository.SlotContentItems, "not an item list"); err != nil {
		t.Fatalf("save: %v", err)
	}
	var out []domain.AgendaItem
	err := store.Load(repository.SlotContentItems, &out)
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("err = %v, want INVALID", err)
	}
}

func TestSlotStoreSize(t *testing.T) {
	store := openTestStore(t)

	if n, err := store.Size(); err != nil || n != 0 {
		t.Fatalf("empty store size = %d, err %v", n, err)
	}
	if err := store.Save(repository.SlotPersonalItems, []domain.AgendaItem{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(repository.SlotKanbanSettings, domain.DefaultKanbanSettings()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n, err := store.Size(); err != nil || n != 2 {
		t.Fatalf("size = %d, err %v, want 2", n, err)
	}
}
