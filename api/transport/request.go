package transport

// AgendaItemRequest is the payload for creating an agenda item.
type AgendaItemRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	SharedWithDJs bool   `json:"shared_with_djs"`
	DJID          string `json:"dj_id"`
}

// AgendaItemPatchRequest carries a partial update; absent fields stay untouched.
type AgendaItemPatchRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	Category      *string `json:"category"`
	SharedWithDJs *bool   `json:"shared_with_djs"`
	DJID          *string `json:"dj_id"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type GroupByRequest struct {
	GroupBy string `json:"group_by"`
}

type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NotePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TTL      int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}

// SessionResponse pairs a session with its signed bearer token.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
