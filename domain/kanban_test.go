package domain

import "testing"

func kanbanFixture() []AgendaItem {
	return []AgendaItem{
		{ID: "a", Title: "Reel teaser", Status: StatusTodo, Priority: PriorityHigh, Category: CategoryInstagram},
		{ID: "b", Title: "Master new set", Status: StatusInProgress, Priority: PriorityMedium, Category: CategoryMusicProject},
		{ID: "c", Title: "Announce release", Status: StatusTodo, Priority: PriorityLow, Category: CategorySetRelease},
		{ID: "d", Title: "Book studio", Status: StatusCompleted, Priority: PriorityMedium, Category: CategoryEvent},
	}
}

func TestProjectColumnsStatusOrder(t *testing.T) {
	columns := ProjectColumns(kanbanFixture(), DefaultKanbanSettings())
	want := []string{"todo", "in_progress", "completed"}
	if len(columns) != len(want) {
		t.Fatalf("got %d columns, want %d", len(columns), len(want))
	}
	for i, key := range want {
		if columns[i].Key != key {
			t.Errorf("column %d key = %q, want %q", i, columns[i].Key, key)
		}
	}
	if got := len(columns[0].Items); got != 2 {
		t.Errorf("todo column holds %d items, want 2", got)
	}
}

func TestProjectColumnsEveryValidItemAppearsOnce(t *testing.T) {
	items := kanbanFixture()
	for _, groupBy := range []GroupBy{GroupByStatus, GroupByPriority, GroupByCategory} {
		settings := DefaultKanbanSettings()
		settings.GroupBy = groupBy
		columns := ProjectColumns(items, settings)

		seen := map[string]int{}
		for _, col := range columns {
			for _, item := range col.Items {
				seen[item.ID]++
			}
		}
		for _, item := range items {
			if seen[item.ID] != 1 {
				t.Errorf("group_by=%s: item %s appears %d times, want exactly once", groupBy, item.ID, seen[item.ID])
			}
		}
	}
}

func TestProjectColumnsOmitsUnknownValues(t *testing.T) {
	items := append(kanbanFixture(), AgendaItem{ID: "x", Title: "Ghost", Status: "archived", Priority: PriorityLow, Category: CategoryEvent})
	columns := ProjectColumns(items, DefaultKanbanSettings())
	for _, col := range columns {
		for _, item := range col.Items {
			if item.ID == "x" {
				t.Fatalf("item with unknown status surfaced in column %q", col.Key)
			}
		}
	}
}

func TestProjectColumnsFallbackStyle(t *testing.T) {
	settings := DefaultKanbanSettings()
	delete(settings.Columns, "in_progress")
	columns := ProjectColumns(kanbanFixture(), settings)

	var col *KanbanColumn
	for i := range columns {
		if columns[i].Key == "in_progress" {
			col = &columns[i]
		}
	}
	if col == nil {
		t.Fatal("in_progress column missing")
	}
	if col.Title != "in_progress" {
		t.Errorf("fallback title = %q, want raw key", col.Title)
	}
	if col.Color != NeutralColumnColor {
		t.Errorf("fallback color = %q, want %q", col.Color, NeutralColumnColor)
	}
}

func TestProjectColumnsEmptyColumnsHaveItemSlices(t *testing.T) {
	columns := ProjectColumns(nil, DefaultKanbanSettings())
	for _, col := range columns {
		if col.Items == nil {
			t.Errorf("column %q has nil items, want empty slice", col.Key)
		}
	}
}

func TestApplyColumnDefault(t *testing.T) {
	item := AgendaItem{Title: "Quick add"}
	ApplyColumnDefault(&item, GroupByPriority, "high")
	if item.Priority != PriorityHigh {
		t.Errorf("priority = %q, want high", item.Priority)
	}
	ApplyColumnDefault(&item, GroupByCategory, "instagram")
	if item.Category != CategoryInstagram {
		t.Errorf("category = %q, want instagram", item.Category)
	}
	ApplyColumnDefault(&item, GroupByStatus, "completed")
	if item.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", item.Status)
	}
}

func TestDefaultKanbanSettingsCoverEveryDimension(t *testing.T) {
	settings := DefaultKanbanSettings()
	if settings.GroupBy != GroupByStatus {
		t.Errorf("default group_by = %q, want status", settings.GroupBy)
	}
	for _, s := range StatusOrder {
		if _, ok := settings.Columns[string(s)]; !ok {
			t.Errorf("no column style for status %q", s)
		}
	}
	for _, p := range PriorityOrder {
		if _, ok := settings.Columns[string(p)]; !ok {
			t.Errorf("no column style for priority %q", p)
		}
	}
	for _, c := range CategoryOrder {
		if _, ok := settings.Columns[string(c)]; !ok {
			t.Errorf("no column style for category %q", c)
		}
	}
}
