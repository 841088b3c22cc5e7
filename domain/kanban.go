package domain

// GroupBy selects the dimension used to partition kanban columns.
type GroupBy string

const (
	GroupByStatus   GroupBy = "status"
	GroupByPriority GroupBy = "priority"
	GroupByCategory GroupBy = "category"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByStatus, GroupByPriority, GroupByCategory:
		return true
	}
	return false
}

// ColumnStyle is the configured presentation of a kanban column.
type ColumnStyle struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// KanbanSettings is the per-user kanban configuration. Columns holds the keys
// of all three dimensions at once; only the keys of the active GroupBy
// dimension become columns.
type KanbanSettings struct {
	GroupBy GroupBy                `json:"group_by"`
	Columns map[string]ColumnStyle `json:"columns"`
}

// NeutralColumnColor is used for column keys without configured style.
const NeutralColumnColor = "#6b7280"

// DefaultKanbanSettings returns the portal's stock column configuration.
func DefaultKanbanSettings() KanbanSettings {
	return KanbanSettings{
		GroupBy: GroupByStatus,
		Columns: map[string]ColumnStyle{
			"todo":          {Title: "A Fazer", Color: "#6b7280"},
			"in_progress":   {Title: "Em Andamento", Color: "#f59e0b"},
			"completed":     {Title: "Concluído", Color: "#10b981"},
			"low":           {Title: "Baixa Prioridade", Color: "#3b82f6"},
			"medium":        {Title: "Média Prioridade", Color: "#f59e0b"},
			"high":          {Title: "Alta Prioridade", Color: "#ef4444"},
			"instagram":     {Title: "Instagram", Color: "#ec4899"},
			"music_project": {Title: "Projetos Musicais", Color: "#8b5cf6"},
			"set_release":   {Title: "Lançamentos", Color: "#3b82f6"},
			"event":         {Title: "Eventos", Color: "#10b981"},
			"personal":      {Title: "Pessoal", Color: "#6b7280"},
		},
	}
}

// KanbanColumn is one projected column with its member items.
type KanbanColumn struct {
	Key   string       `json:"key"`
	Title string       `json:"title"`
	Color string       `json:"color"`
	Items []AgendaItem `json:"items"`
}

// columnKeys returns the active column keys for a dimension, in fixed
// enumeration order. Map iteration order is never relied on.
func columnKeys(g GroupBy) []string {
	switch g {
	case GroupByPriority:
		keys := make([]string, len(PriorityOrder))
		for i, p := range PriorityOrder {
			keys[i] = string(p)
		}
		return keys
	case GroupByCategory:
		keys := make([]string, len(CategoryOrder))
		for i, c := range CategoryOrder {
			keys[i] = string(c)
		}
		return keys
	default:
		keys := make([]string, len(StatusOrder))
		for i, s := range StatusOrder {
			keys[i] = string(s)
		}
		return keys
	}
}

// ColumnKeyFor returns the value of the item's grouped dimension.
func ColumnKeyFor(item AgendaItem, g GroupBy) string {
	switch g {
	case GroupByPriority:
		return string(item.Priority)
	case GroupByCategory:
		return string(item.Category)
	default:
		return string(item.Status)
	}
}

// ProjectColumns groups items into the active columns of the settings'
// dimension. Items whose field value matches no column key are omitted from
// the projection; they stay in the underlying collection and in list views.
func ProjectColumns(items []AgendaItem, settings KanbanSettings) []KanbanColumn {
	keys := columnKeys(settings.GroupBy)
	columns := make([]KanbanColumn, 0, len(keys))
	for _, key := range keys {
		style, ok := settings.Columns[key]
		if !ok {
			style = ColumnStyle{Title: key, Color: NeutralColumnColor}
		}
		if style.Title == "" {
			style.Title = key
		}
		if style.Color == "" {
			style.Color = NeutralColumnColor
		}
		column := KanbanColumn{
			Key:   key,
			Title: style.Title,
			Color: style.Color,
			Items: []AgendaItem{},
		}
		for _, item := range items {
			if ColumnKeyFor(item, settings.GroupBy) == key {
				column.Items = append(column.Items, item)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// ApplyColumnDefault pre-fills the grouped dimension's field of a new item
// with the clicked column's key (quick-add).
func ApplyColumnDefault(item *AgendaItem, g GroupBy, columnKey string) {
	if item == nil {
		return
	}
	switch g {
	case GroupByPriority:
		item.Priority = Priority(columnKey)
	case GroupByCategory:
		item.Category = Category(columnKey)
	default:
		item.Status = Status(columnKey)
	}
}
