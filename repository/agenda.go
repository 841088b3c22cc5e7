package repository

// Named slots holding the agenda state blobs. Keys are kept from the portal so
// exported data stays importable.
const (
	SlotPersonalItems  = "agenda-manager-personal"
	SlotContentItems   = "agenda-manager-content"
	SlotKanbanSettings = "agenda-manager-kanban-settings"
)

// SlotStore persists whole JSON values under named slots. Load returns
// domain.ErrSlotNotFound for a missing slot and a wrapped error for an
// undecodable one; callers fall back to their defaults in both cases so a
// corrupt blob never blocks startup.
type SlotStore interface {
	Load(key string, out any) error
	Save(key string, value any) error
	Close() error
}
