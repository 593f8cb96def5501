package quote

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const selectWithNames = `
	SELECT q.*,
		p.name AS provider_name,
		NULLIF(TRIM(COALESCE(u.first_name, '') || ' ' || COALESCE(u.last_name, '')), '') AS customer_name
	FROM quote_requests q
	JOIN providers p ON p.id = q.provider_id
	JOIN users u ON u.id = q.customer_id
`

// Repository handles quote request persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a quote repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a quote request
func (r *Repository) Create(ctx context.Context, q *QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (
			id, provider_id, customer_id, title, description, timeline,
			budget_band, is_emergency, contact_pref, service_address,
			status, created_at, updated_at
		) VALUES (
			:id, :provider_id, :customer_id, :title, :description, :timeline,
			:budget_band, :is_emergency, :contact_pref, :service_address,
			:status, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, q)
	return err
}

// GetByID returns one quote request with participant names
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*QuoteRequest, error) {
	var q QuoteRequest
	err := r.db.GetContext(ctx, &q, selectWithNames+` WHERE q.id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListByCustomerID returns the customer's quote requests, newest first
func (r *Repository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]QuoteRequest, error) {
	quotes := []QuoteRequest{}
	err := r.db.SelectContext(ctx, &quotes, selectWithNames+` WHERE q.customer_id = $1 ORDER BY q.created_at DESC`, customerID)
	return quotes, err
}

// ListByProviderID returns quote requests sent to a provider, newest first
func (r *Repository) ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]QuoteRequest, error) {
	quotes := []QuoteRequest{}
	err := r.db.SelectContext(ctx, &quotes, selectWithNames+` WHERE q.provider_id = $1 ORDER BY q.created_at DESC`, providerID)
	return quotes, err
}

// Update persists status and quote response fields
func (r *Repository) Update(ctx context.Context, q *QuoteRequest) error {
	query := `
		UPDATE quote_requests SET
			status = :status,
			quote_amount = :quote_amount,
			quote_message = :quote_message,
			quoted_at = :quoted_at,
			updated_at = :updated_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, q)
	return err
}
