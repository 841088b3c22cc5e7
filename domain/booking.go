package domain

import (
	"encoding/json"
	"time"
)

// DJ represents a managed artist.
type DJ struct {
	ID            string     `json:"id"`
	ArtistName    string     `json:"artist_name"`
	RealName      string     `json:"real_name,omitempty"`
	Email         string     `json:"email,omitempty"`
	Genre         string     `json:"genre,omitempty"`
	BasePrice     float64    `json:"base_price,omitempty"`
	InstagramURL  string     `json:"instagram_url,omitempty"`
	YoutubeURL    string     `json:"youtube_url,omitempty"`
	TiktokURL     string     `json:"tiktok_url,omitempty"`
	SoundcloudURL string     `json:"soundcloud_url,omitempty"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Status        string     `json:"status"`
	IsActive      bool       `json:"is_active"`
	EventCount    int        `json:"event_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Localized fallbacks used when an event lacks a title or date.
const (
	UntitledEventLabel  = "Evento sem título"
	UndatedEventLabel   = "Data não definida"
	eventDateListLayout = "02/01/2006"
)

// Event is a booked gig, optionally linked to a DJ and a producer.
type Event struct {
	ID             string     `json:"id"`
	Title          string     `json:"title,omitempty"`
	EventName      string     `json:"event_name,omitempty"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	Fee            float64    `json:"fee,omitempty"`
	CacheValue     float64    `json:"cache_value,omitempty"`
	PaymentStatus  string     `json:"payment_status,omitempty"`
	PaymentProof   string     `json:"payment_proof,omitempty"`
	DJID           string     `json:"dj_id,omitempty"`
	DJName         string     `json:"dj_name,omitempty"`
	DJArtistName   string     `json:"artist_name,omitempty"`
	ProducerID     string     `json:"producer_id,omitempty"`
	ProducerName   string     `json:"producer_name,omitempty"`
	CompanyName    string     `json:"company_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DisplayTitle prefers the title, then the legacy event_name column, then the
// localized fallback.
func (e *Event) DisplayTitle() string {
	if e == nil {
		return UntitledEventLabel
	}
	if e.Title != "" {
		return e.Title
	}
	if e.EventName != "" {
		return e.EventName
	}
	return UntitledEventLabel
}

// DisplayDate renders the event date as dd/MM/yyyy or the localized fallback.
func (e *Event) DisplayDate() string {
	if e == nil || e.EventDate == nil {
		return UndatedEventLabel
	}
	return e.EventDate.Format(eventDateListLayout)
}

// MarshalJSON augments every serialized event with the localized display
// fields so listings and DJ-agenda snapshots carry the fallback rendering.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return json.Marshal(struct {
		plain
		DisplayTitle string `json:"display_title"`
		DisplayDate  string `json:"display_date"`
	}{
		plain:        plain(e),
		DisplayTitle: e.DisplayTitle(),
		DisplayDate:  e.DisplayDate(),
	})
}

// Producer represents an event organizer the agency contracts with.
type Producer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	EventCount  int       `json:"event_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Payment is a fee owed or settled for an event.
type Payment struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	PaymentProof string     `json:"payment_proof,omitempty"`
	EventTitle   string     `json:"event_title,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	ProducerName string     `json:"producer_name,omitempty"`
	CompanyName  string     `json:"company_name,omitempty"`
	DJName       string     `json:"dj_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsPending reports whether the payment awaits confirmation: a proof was
// submitted but the status has not been marked "pago" yet.
func (p *Payment) IsPending() bool {
	return p != nil && p.PaymentProof != "" && p.Status != "pago"
}

// Contract binds an event to its signed agreement.
type Contract struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	Status       string     `json:"status,omitempty"`
	EventTitle   string     `json:"event_title,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	CacheValue   float64    `json:"cache_value,omitempty"`
	DJName       string     `json:"dj_name,omitempty"`
	ProducerName string     `json:"producer_name,omitempty"`
	CompanyName  string     `json:"company_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DashboardMetrics aggregates the portal's landing-page counters.
type DashboardMetrics struct {
	TotalDJs     int     `json:"total_djs"`
	TotalEvents  int     `json:"total_events"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
}

// Note is a free-form annotation owned by a portal user.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate rejects notes without a title.
func (n *Note) Validate() error {
	if n == nil {
		return ErrInvalidPayload
	}
	if n.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
