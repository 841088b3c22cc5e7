package djagenda

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agendadesk/backend/domain"
)

// EventSource is the slice of the booking repository the loader needs.
type EventSource interface {
	ListEventsByDJ(ctx context.Context, djID string) ([]domain.Event, error)
}

// Snapshot is the loader's current view: the selected DJ, the last applied
// event list and whether a fetch is still in flight.
type Snapshot struct {
	DJID    string         `json:"dj_id"`
	Events  []domain.Event `json:"events"`
	Loading bool           `json:"loading"`
}

// Loader fetches a DJ's events asynchronously with last-selection-wins
// semantics: switching DJs invalidates any in-flight fetch, so a slow earlier
// response can never overwrite a later one. A failed fetch keeps the last
// applied data.
type Loader struct {
	source  EventSource
	timeout time.Duration
	logger  *zap.Logger

	mu      sync.Mutex
	gen     uint64
	djID    string
	events  []domain.Event
	loading bool
	lastErr error
	ready   chan struct{}
}

func New(source EventSource, timeout time.Duration, logger *zap.Logger) *Loader {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:  source,
		timeout: timeout,
		logger:  logger,
	}
}

// Select starts fetching events for the DJ, superseding any in-flight fetch.
func (l *Loader) Select(djID string) {
	l.mu.Lock()
	l.selectLocked(djID)
	l.mu.Unlock()
}

func (l *Loader) selectLocked(djID string) {
	l.gen++
	l.djID = djID
	l.loading = true
	l.ready = make(chan struct{})
	go l.fetch(l.gen, djID, l.ready)
}

func (l *Loader) fetch(gen uint64, djID string, ready chan struct{}) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	events, err := l.source.ListEventsByDJ(ctx, djID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		// A later selection superseded this fetch; drop the result but still
		// release anyone waiting on this selection.
		close(ready)
		return
	}
	l.loading = false
	close(ready)
	if err != nil {
		l.lastErr = err
		l.logger.Warn("dj event fetch failed, keeping previous data", zap.String("dj_id", djID), zap.Error(err))
		return
	}
	l.events = events
	l.lastErr = nil
}

// Get selects the DJ if it differs from the current selection and waits for
// the fetch to settle or the context to expire, then returns the snapshot.
func (l *Loader) Get(ctx context.Context, djID string) Snapshot {
	l.mu.Lock()
	if l.djID != djID || l.ready == nil {
		l.selectLocked(djID)
	}
	ready := l.ready
	l.mu.Unlock()

	select {
	case <-ready:
	case <-ctx.Done():
	}
	return l.Snapshot()
}

// Snapshot returns the current state without blocking.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	events := l.events
	if events == nil {
		events = []domain.Event{}
	}
	return Snapshot{
		DJID:    l.djID,
		Events:  events,
		Loading: l.loading,
	}
}

// LastError reports the most recent fetch failure, nil after a success.
func (l *Loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}
