package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueDrainOrder(t *testing.T) {
	store := openTestStore(t)

	base := time.Now()
	for i, id := range []string{"third", "first", "second"} {
		offsets := map[string]time.Duration{"first": 0, "second": time.Second, "third": 2 * time.Second}
		item := Item{
			ID:        id,
			Entity:    EntityNote,
			Operation: OperationCreate,
			Data:      json.RawMessage(`{}`),
			Timestamp: base.Add(offsets[id]),
		}
		if err := store.Enqueue(item); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	batch, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(batch) != len(want) {
		t.Fatalf("got %d items, want %d", len(batch), len(want))
	}
	for i, id := range want {
		if batch[i].ID != id {
			t.Errorf("position %d = %q, want %q (oldest first)", i, batch[i].ID, id)
		}
	}
}

func TestGetBatchDoesNotRemove(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{Entity: EntityNote, Operation: OperationDelete}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if _, err := store.GetBatch(10); err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if n, _ := store.Size(); n != 1 {
		t.Fatalf("size = %d after peek, want 1", n)
	}
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{Entity: EntityNote, Operation: OperationUpdate}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	batch, err := store.GetBatch(1)
	if err != nil || len(batch) != 1 {
		t.Fatalf("get batch: %v, %d items", err, len(batch))
	}
	if err := store.Remove(batch[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if n, _ := store.Size(); n != 0 {
		t.Fatalf("size = %d after remove, want 0", n)
	}
}

func TestRequeueBumpsRetriesToTheBack(t *testing.T) {
	store := openTestStore(t)

	old := Item{ID: "retry-me", Entity: EntityNote, Operation: OperationCreate, Timestamp: time.Now().Add(-time.Minute)}
	if err := store.Enqueue(old); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(Item{ID: "newer", Entity: EntityNote, Operation: OperationCreate}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	batch, _ := store.GetBatch(10)
	first := batch[0]
	first.Retries++
	if err := store.Remove(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Requeue(first); err != nil {
		t.Fatalf("requeue: %v", err)
	}

	batch, _ = store.GetBatch(10)
	if len(batch) != 2 {
		t.Fatalf("got %d items, want 2", len(batch))
	}
	if batch[len(batch)-1].ID != "retry-me" {
		t.Errorf("requeued item not at the back: %+v", batch)
	}
	if batch[len(batch)-1].Retries != 1 {
		t.Errorf("retries = %d, want 1", batch[len(batch)-1].Retries)
	}
}

func TestCleanupDropsOldItems(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{ID: "ancient", Timestamp: time.Now().Add(-48 * time.Hour)}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(Item{ID: "recent"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	batch, _ := store.GetBatch(10)
	if len(batch) != 1 || batch[0].ID != "recent" {
		t.Fatalf("cleanup kept the wrong items: %+v", batch)
	}
}
