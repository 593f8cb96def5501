package quote

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest opens a quote request with a provider
type CreateRequest struct {
	Title          string `json:"title" validate:"required,min=3,max=200"`
	Description    string `json:"description" validate:"required,min=10,max=5000"`
	Timeline       string `json:"timeline" validate:"required,quote_timeline"`
	BudgetBand     string `json:"budget_band" validate:"required,quote_budget"`
	IsEmergency    bool   `json:"is_emergency"`
	ContactPref    string `json:"contact_pref" validate:"required,contact_pref"`
	ServiceAddress string `json:"service_address" validate:"omitempty,max=500"`
}

// RespondRequest is the provider's quote
type RespondRequest struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Message string  `json:"message" validate:"omitempty,max=3000"`
}

// StatusRequest moves a quote to a new status
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response is one quote request
type Response struct {
	ID             uuid.UUID  `json:"id"`
	ProviderID     uuid.UUID  `json:"provider_id"`
	ProviderName   string     `json:"provider_name,omitempty"`
	CustomerName   string     `json:"customer_name,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Timeline       string     `json:"timeline"`
	BudgetBand     string     `json:"budget_band"`
	IsEmergency    bool       `json:"is_emergency"`
	ContactPref    string     `json:"contact_pref"`
	ServiceAddress string     `json:"service_address,omitempty"`
	Status         Status     `json:"status"`
	QuoteAmount    *float64   `json:"quote_amount,omitempty"`
	QuoteMessage   string     `json:"quote_message,omitempty"`
	QuotedAt       *time.Time `json:"quoted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToResponse converts a quote request to its API shape
func ToResponse(q *QuoteRequest) Response {
	resp := Response{
		ID:          q.ID,
		ProviderID:  q.ProviderID,
		Title:       q.Title,
		Description: q.Description,
		Timeline:    q.Timeline,
		BudgetBand:  q.BudgetBand,
		IsEmergency: q.IsEmergency,
		ContactPref: q.ContactPref,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
	}
	if q.ProviderName.Valid {
		resp.ProviderName = q.ProviderName.String
	}
	if q.CustomerName.Valid {
		resp.CustomerName = q.CustomerName.String
	}
	if q.ServiceAddress.Valid {
		resp.ServiceAddress = q.ServiceAddress.String
	}
	if q.QuoteAmount.Valid {
		a := q.QuoteAmount.Float64
		resp.QuoteAmount = &a
	}
	if q.QuoteMessage.Valid {
		resp.QuoteMessage = q.QuoteMessage.String
	}
	if q.QuotedAt.Valid {
		t := q.QuotedAt.Time
		resp.QuotedAt = &t
	}
	return resp
}
