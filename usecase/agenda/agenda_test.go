package agenda

import (
	"path/filepath"
	"testing"

	"github.com/agendadesk/backend/domain"
	boltRepo "github.com/agendadesk/backend/repository/bolt"
)

func openStore(t *testing.T, path string) *boltRepo.SlotStore {
	t.Helper()
	store, err := boltRepo.Open(path, nil)
	if err != nil {
		t.Fatalf("open slot store: %v", err)
	}
	return store
}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agenda.db")
	store := openStore(t, path)
	t.Cleanup(func() { store.Close() })
	return New(store, nil), path
}

func TestCreateItemRoutesByCategory(t *testing.T) {
	svc, _ := newTestService(t)

	personal, err := svc.CreateItem(ItemDraft{Title: "Dentist", Date: "2026-09-15", Category: domain.CategoryPersonal})
	if err != nil {
		t.Fatalf("create personal: %v", err)
	}
	content, err := svc.CreateItem(ItemDraft{Title: "Reel", Date: "2026-09-16", Category: domain.CategoryInstagram})
	if err != nil {
		t.Fatalf("create content: %v", err)
	}

	if got := svc.Personal(); len(got) != 1 || got[0].ID != personal.ID {
		t.Errorf("personal collection = %+v, want only %s", got, personal.ID)
	}
	if got := svc.Content(); len(got) != 1 || got[0].ID != content.ID {
		t.Errorf("content collection = %+v, want only %s", got, content.ID)
	}
}

func TestCreateItemAppliesDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateItem(ItemDraft{Title: "Bare"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != domain.StatusTodo || item.Priority != domain.PriorityMedium || item.Category != domain.CategoryPersonal {
		t.Errorf("defaults not applied: %+v", item)
	}
	if item.ID == "" {
		t.Error("item has no id")
	}
}

func TestCreateItemRejectsInvalidDraft(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateItem(ItemDraft{Title: ""}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("empty title: err = %v, want INVALID", err)
	}
	if _, err := svc.CreateItem(ItemDraft{Title: "x", Status: "archived"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("bad status: err = %v, want INVALID", err)
	}
	if len(svc.Personal())+len(svc.Content()) != 0 {
		t.Error("rejected drafts mutated state")
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateItem(ItemDraft{Title: "Reel", Category: domain.CategoryInstagram})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(item.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}

	if _, err := svc.UpdateStatus(item.ID, "archived"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("unknown status: err = %v, want INVALID", err)
	}
	if _, err := svc.UpdateStatus("missing", domain.StatusTodo); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("missing item: err = %v, want NOT_FOUND", err)
	}
}

func TestUpdateFieldsReroutesAcrossPartition(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateItem(ItemDraft{Title: "Was content", Category: domain.CategoryEvent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	personal := domain.CategoryPersonal
	moved, err := svc.UpdateFields(item.ID, ItemPatch{Category: &personal})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if moved.Category != domain.CategoryPersonal {
		t.Errorf("category = %q, want personal", moved.Category)
	}
	if len(svc.Content()) != 0 {
		t.Error("item still present in content collection")
	}
	if got := svc.Personal(); len(got) != 1 || got[0].ID != item.ID {
		t.Errorf("personal collection = %+v, want the moved item", got)
	}

	// And back.
	event := domain.CategoryEvent
	if _, err := svc.UpdateFields(item.ID, ItemPatch{Category: &event}); err != nil {
		t.Fatalf("move back: %v", err)
	}
	if len(svc.Personal()) != 0 || len(svc.Content()) != 1 {
		t.Error("reverse move left the partition inconsistent")
	}
}

func TestUpdateFieldsRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateItem(ItemDraft{Title: "Keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	if _, err := svc.UpdateFields(item.ID, ItemPatch{Title: &empty}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("err = %v, want INVALID", err)
	}
	if got := svc.Personal(); got[0].Title != "Keep me" {
		t.Errorf("rejected patch mutated the item: %+v", got[0])
	}
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.CreateItem(ItemDraft{Title: "Doomed", Category: domain.CategoryInstagram})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteItem(item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(svc.Content()) != 0 {
		t.Error("item survived deletion")
	}
	if err := svc.DeleteItem(item.ID); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("second delete: err = %v, want NOT_FOUND", err)
	}
}

func TestSetGroupBy(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.SetGroupBy(domain.GroupByPriority)
	if err != nil {
		t.Fatalf("set group by: %v", err)
	}
	if settings.GroupBy != domain.GroupByPriority {
		t.Errorf("group_by = %q, want priority", settings.GroupBy)
	}
	if _, err := svc.SetGroupBy("assignee"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("err = %v, want INVALID", err)
	}
	if svc.Settings().GroupBy != domain.GroupByPriority {
		t.Error("rejected dimension overwrote settings")
	}
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.db")
	store := openStore(t, path)
	svc := New(store, nil)

	created, err := svc.CreateItem(ItemDraft{Title: "Durable", Date: "2026-09-15", Category: domain.CategoryMusicProject})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetGroupBy(domain.GroupByCategory); err != nil {
		t.Fatalf("set group by: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openStore(t, path)
	t.Cleanup(func() { second.Close() })
	reopened := New(second, nil)
	if got := reopened.Content(); len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("content after restart = %+v, want the created item", got)
	}
	if reopened.Settings().GroupBy != domain.GroupByCategory {
		t.Errorf("group_by after restart = %q, want category", reopened.Settings().GroupBy)
	}
}

func TestKanbanViewUsesContentCollection(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateItem(ItemDraft{Title: "Reel", Category: domain.CategoryInstagram}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateItem(ItemDraft{Title: "Private", Category: domain.CategoryPersonal}); err != nil {
		t.Fatalf("create: %v", err)
	}

	total := 0
	for _, col := range svc.KanbanView() {
		total += len(col.Items)
	}
	if total != 1 {
		t.Errorf("kanban holds %d items, want 1 (personal items stay out)", total)
	}
}
