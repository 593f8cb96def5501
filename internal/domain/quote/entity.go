package quote

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a quote request
type Status string

const (
	StatusPending  Status = "pending"
	StatusViewed   Status = "viewed"
	StatusQuoted   Status = "quoted"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

// transitions maps each status to the states it may move to. Accepted,
// declined and expired are terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusViewed, StatusQuoted, StatusDeclined, StatusExpired},
	StatusViewed:  {StatusQuoted, StatusDeclined, StatusExpired},
	StatusQuoted:  {StatusAccepted, StatusDeclined, StatusExpired},
}

// CanTransition reports whether a status change is allowed
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether the value is a known status
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusViewed, StatusQuoted, StatusAccepted, StatusDeclined, StatusExpired:
		return true
	}
	return false
}

// QuoteRequest is a customer's request for a quote from one provider
// (matches quote_requests table)
type QuoteRequest struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`
	CustomerID uuid.UUID `db:"customer_id"`

	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Timeline       string         `db:"timeline"`
	BudgetBand     string         `db:"budget_band"`
	IsEmergency    bool           `db:"is_emergency"`
	ContactPref    string         `db:"contact_pref"`
	ServiceAddress sql.NullString `db:"service_address"`

	Status Status `db:"status"`

	// Provider's response, set on the quoted transition
	QuoteAmount  sql.NullFloat64 `db:"quote_amount"`
	QuoteMessage sql.NullString  `db:"quote_message"`
	QuotedAt     sql.NullTime    `db:"quoted_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Populated by joins
	ProviderName sql.NullString `db:"provider_name"`
	CustomerName sql.NullString `db:"customer_name"`
}
