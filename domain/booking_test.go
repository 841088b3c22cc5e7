package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEventDisplayTitle(t *testing.T) {
	tests := []struct {
		name  string
		event *Event
		want  string
	}{
		{"title wins", &Event{Title: "Sunset Rooftop", EventName: "legacy"}, "Sunset Rooftop"},
		{"legacy name", &Event{EventName: "Club Night"}, "Club Night"},
		{"fallback", &Event{}, UntitledEventLabel},
		{"nil", nil, UntitledEventLabel},
	}
	for _, tt := range tests {
		if got := tt.event.DisplayTitle(); got != tt.want {
			t.Errorf("%s: DisplayTitle() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEventDisplayDate(t *testing.T) {
	date := time.Date(2026, time.September, 5, 22, 0, 0, 0, time.UTC)
	ev := &Event{EventDate: &date}
	if got := ev.DisplayDate(); got != "05/09/2026" {
		t.Errorf("DisplayDate() = %q, want 05/09/2026", got)
	}
	if got := (&Event{}).DisplayDate(); got != UndatedEventLabel {
		t.Errorf("DisplayDate() without date = %q, want %q", got, UndatedEventLabel)
	}
}

func TestEventJSONCarriesDisplayFields(t *testing.T) {
	date := time.Date(2026, time.September, 5, 22, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(Event{ID: "ev-1", Title: "Sunset Rooftop", EventDate: &date})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["display_title"] != "Sunset Rooftop" {
		t.Errorf("display_title = %v, want the title", decoded["display_title"])
	}
	if decoded["display_date"] != "05/09/2026" {
		t.Errorf("display_date = %v, want 05/09/2026", decoded["display_date"])
	}

	payload, err = json.Marshal(Event{ID: "ev-2"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["display_title"] != UntitledEventLabel {
		t.Errorf("display_title = %v, want %q", decoded["display_title"], UntitledEventLabel)
	}
	if decoded["display_date"] != UndatedEventLabel {
		t.Errorf("display_date = %v, want %q", decoded["display_date"], UndatedEventLabel)
	}
}

func TestPaymentIsPending(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		want    bool
	}{
		{"proof submitted, unpaid", Payment{PaymentProof: "proof.pdf", Status: "aguardando"}, true},
		{"proof submitted, empty status", Payment{PaymentProof: "proof.pdf"}, true},
		{"proof submitted, settled", Payment{PaymentProof: "proof.pdf", Status: "pago"}, false},
		{"no proof yet", Payment{Status: "aguardando"}, false},
		{"no proof, settled", Payment{Status: "pago"}, false},
	}
	for _, tt := range tests {
		if got := tt.payment.IsPending(); got != tt.want {
			t.Errorf("%s: IsPending() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNoteValidate(t *testing.T) {
	if err := (&Note{Title: "ok"}).Validate(); err != nil {
		t.Errorf("valid note rejected: %v", err)
	}
	if err := (&Note{}).Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Errorf("err = %v, want INVALID", err)
	}
}
