package domain

import (
	"strings"
	"testing"
)

func TestNewItemIDKeepsCategoryPrefix(t *testing.T) {
	id := NewItemID(CategoryInstagram)
	if !strings.HasPrefix(id, "instagram-") {
		t.Fatalf("id %q lacks category prefix", id)
	}
	if id == NewItemID(CategoryInstagram) {
		t.Fatal("two generated ids collided")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	item := AgendaItem{Title: "Untouched"}
	item.Normalize()
	if item.Status != StatusTodo {
		t.Errorf("status = %q, want todo", item.Status)
	}
	if item.Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium", item.Priority)
	}
	if item.Category != CategoryPersonal {
		t.Errorf("category = %q, want personal", item.Category)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	item := AgendaItem{Title: "Set release", Status: StatusCompleted, Priority: PriorityHigh, Category: CategorySetRelease}
	item.Normalize()
	if item.Status != StatusCompleted || item.Priority != PriorityHigh || item.Category != CategorySetRelease {
		t.Errorf("normalize overwrote explicit values: %+v", item)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    AgendaItem
		wantErr bool
	}{
		{"valid", AgendaItem{Title: "ok", Status: StatusTodo, Priority: PriorityLow, Category: CategoryEvent}, false},
		{"empty title", AgendaItem{Status: StatusTodo, Priority: PriorityLow, Category: CategoryEvent}, true},
		{"bad status", AgendaItem{Title: "x", Status: "archived", Priority: PriorityLow, Category: CategoryEvent}, true},
		{"bad priority", AgendaItem{Title: "x", Status: StatusTodo, Priority: "urgent", Category: CategoryEvent}, true},
		{"bad category", AgendaItem{Title: "x", Status: StatusTodo, Priority: PriorityLow, Category: "spotify"}, true},
	}
	for _, tt := range tests {
		err := tt.item.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if tt.wantErr && !IsDomainError(err, ErrCodeInvalid) {
			t.Errorf("%s: expected an INVALID domain error, got %v", tt.name, err)
		}
	}
}

func TestCategoryIsPersonal(t *testing.T) {
	if !CategoryPersonal.IsPersonal() {
		t.Error("personal category not flagged personal")
	}
	for _, c := range []Category{CategoryInstagram, CategoryMusicProject, CategorySetRelease, CategoryEvent} {
		if c.IsPersonal() {
			t.Errorf("content category %q flagged personal", c)
		}
	}
}
