package agenda

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

// Service owns the agenda state: the personal and content collections plus the
// kanban settings. Every mutation goes through a named command and is flushed
// to the slot store; the in-memory state stays authoritative when a flush
// fails.
type Service struct {
	slots  repository.SlotStore
	logger *zap.Logger

	mu       sync.RWMutex
	personal []domain.AgendaItem
	content  []domain.AgendaItem
	settings domain.KanbanSettings
}

// New loads the three slots, falling back to empty collections and the default
// kanban settings when a slot is missing or corrupt. Load problems never fail
// startup.
func New(slots repository.SlotStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		slots:    slots,
		logger:   logger,
		settings: domain.DefaultKanbanSettings(),
	}

	if err := slots.Load(repository.SlotPersonalItems, &s.personal); err != nil {
		s.warnLoad(repository.SlotPersonalItems, err)
		s.personal = nil
	}
	if err := slots.Load(repository.SlotContentItems, &s.content); err != nil {
		s.warnLoad(repository.SlotContentItems, err)
		s.content = nil
	}
	var stored domain.KanbanSettings
	if err := slots.Load(repository.SlotKanbanSettings, &stored); err != nil {
		s.warnLoad(repository.SlotKanbanSettings, err)
	} else if stored.GroupBy.Valid() && stored.Columns != nil {
		s.settings = stored
	}
	return s
}

func (s *Service) warnLoad(slot string, err error) {
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return
	}
	s.logger.Warn("slot load failed, using defaults", zap.String("slot", slot), zap.Error(err))
}

// ItemDraft carries the user-provided fields of a new item.
type ItemDraft struct {
	Title         string
	Description   string
	Date          string
	Time          string
	Status        domain.Status
	Priority      domain.Priority
	Category      domain.Category
	SharedWithDJs bool
	DJID          string
}

// ItemPatch carries a partial update; nil fields are left untouched.
type ItemPatch struct {
	Title         *string
	Description   *string
	Date          *string
	Time          *string
	Status        *domain.Status
	Priority      *domain.Priority
	Category      *domain.Category
	SharedWithDJs *bool
	DJID          *string
}

// CreateItem validates the draft and routes the new item to the collection its
// category belongs to. Validation failures never mutate state.
func (s *Service) CreateItem(draft ItemDraft) (*domain.AgendaItem, error) {
	item := domain.AgendaItem{
		Title:         draft.Title,
		Description:   draft.Description,
		Date:          draft.Date,
		Time:          draft.Time,
		Status:        draft.Status,
		Priority:      draft.Priority,
		Category:      draft.Category,
		SharedWithDJs: draft.SharedWithDJs,
		DJID:          draft.DJID,
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.ID = domain.NewItemID(item.Category)

	s.mu.Lock()
	defer s.mu.Unlock()
	if item.Category.IsPersonal() {
		s.personal = append(s.personal, item)
		s.persistPersonal()
	} else {
		s.content = append(s.content, item)
		s.persistContent()
	}
	return &item, nil
}

// UpdateStatus moves an item to another workflow state, wherever it lives.
func (s *Service) UpdateStatus(id string, status domain.Status) (*domain.AgendaItem, error) {
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	st := status
	return s.UpdateFields(id, ItemPatch{Status: &st})
}

// UpdateFields applies a partial update. A category change across the personal
// boundary re-routes the item so the two collections stay disjoint.
func (s *Service) UpdateFields(id string, patch ItemPatch) (*domain.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, idx := s.locate(id)
	if collection == nil {
		return nil, domain.ErrItemNotFound
	}

	item := (*collection)[idx]
	wasPersonal := item.Category.IsPersonal()
	if err := applyPatch(&item, patch); err != nil {
		return nil, err
	}

	if wasPersonal == item.Category.IsPersonal() {
		(*collection)[idx] = item
		s.persistFor(item.Category)
		return &item, nil
	}

	// Category crossed the partition: remove from the old collection and
	// append to the other.
	*collection = append((*collection)[:idx], (*collection)[idx+1:]...)
	if item.Category.IsPersonal() {
		s.personal = append(s.personal, item)
	} else {
		s.content = append(s.content, item)
	}
	s.persistPersonal()
	s.persistContent()
	return &item, nil
}

// DeleteItem removes the item from whichever collection holds it.
func (s *Service) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, idx := s.locate(id)
	if collection == nil {
		return domain.ErrItemNotFound
	}
	personal := collection == &s.personal
	*collection = append((*collection)[:idx], (*collection)[idx+1:]...)
	if personal {
		s.persistPersonal()
	} else {
		s.persistContent()
	}
	return nil
}

// SetGroupBy switches the kanban grouping dimension.
func (s *Service) SetGroupBy(groupBy domain.GroupBy) (domain.KanbanSettings, error) {
	if !groupBy.Valid() {
		return domain.KanbanSettings{}, domain.NewError(domain.ErrCodeInvalid, "unknown grouping dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.GroupBy = groupBy
	if err := s.slots.Save(repository.SlotKanbanSettings, s.settings); err != nil {
		s.logger.Warn("kanban settings flush failed", zap.Error(err))
	}
	return s.settings, nil
}

// Personal returns a copy of the personal agenda collection.
func (s *Service) Personal() []domain.AgendaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AgendaItem(nil), s.personal...)
}

// Content returns a copy of the content-plan collection.
func (s *Service) Content() []domain.AgendaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AgendaItem(nil), s.content...)
}

// Settings returns the current kanban configuration.
func (s *Service) Settings() domain.KanbanSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// DayView returns the personal items of a day, time-ordered.
func (s *Service) DayView(day time.Time) []domain.AgendaItem {
	return domain.ItemsForDay(s.Personal(), day)
}

// ListView returns the personal items ordered by date then time.
func (s *Service) ListView() []domain.AgendaItem {
	return domain.SortForList(s.Personal())
}

// KanbanView projects the content collection into the active columns.
func (s *Service) KanbanView() []domain.KanbanColumn {
	s.mu.RLock()
	items := append([]domain.AgendaItem(nil), s.content...)
	settings := s.settings
	s.mu.RUnlock()
	return domain.ProjectColumns(items, settings)
}

// MonthGrid builds the calendar grid used by the personal agenda view.
func (s *Service) MonthGrid(year int, month time.Month) []domain.DayCell {
	return domain.MonthGrid(year, month)
}

// locate finds the collection and index of an item id. Callers hold s.mu.
func (s *Service) locate(id string) (*[]domain.AgendaItem, int) {
	for i := range s.personal {
		if s.personal[i].ID == id {
			return &s.personal, i
		}
	}
	for i := range s.content {
		if s.content[i].ID == id {
			return &s.content, i
		}
	}
	return nil, -1
}

func (s *Service) persistFor(category domain.Category) {
	if category.IsPersonal() {
		s.persistPersonal()
	} else {
		s.persistContent()
	}
}

func (s *Service) persistPersonal() {
	if err := s.slots.Save(repository.SlotPersonalItems, s.personal); err != nil {
		s.logger.Warn("personal agenda flush failed", zap.Error(err))
	}
}

func (s *Service) persistContent() {
	if err := s.slots.Save(repository.SlotContentItems, s.content); err != nil {
		s.logger.Warn("content plan flush failed", zap.Error(err))
	}
}

func applyPatch(item *domain.AgendaItem, patch ItemPatch) error {
	if patch.Title != nil {
		if *patch.Title == "" {
			return domain.ErrEmptyTitle
		}
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.Time != nil {
		item.Time = *patch.Time
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return domain.NewError(domain.ErrCodeInvalid, "unknown status")
		}
		item.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return domain.NewError(domain.ErrCodeInvalid, "unknown priority")
		}
		item.Priority = *patch.Priority
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return domain.NewError(domain.ErrCodeInvalid, "unknown category")
		}
		item.Category = *patch.Category
	}
	if patch.SharedWithDJs != nil {
		item.SharedWithDJs = *patch.SharedWithDJs
	}
	if patch.DJID != nil {
		item.DJID = *patch.DJID
	}
	return nil
}
