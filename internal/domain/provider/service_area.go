package provider

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ServiceArea is a geographic area the provider serves
type ServiceArea struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`

	City      string         `db:"city"`
	State     string         `db:"state"`
	ZipCodes  sql.NullString `db:"zip_codes"`
	RadiusMi  sql.NullInt64  `db:"radius_miles"`
	IsPrimary bool           `db:"is_primary"`

	CreatedAt time.Time `db:"created_at"`
}

// ServiceAreaRepository handles service area persistence
type ServiceAreaRepository struct {
	db *sqlx.DB
}

// NewServiceAreaRepository creates a service area repository
func NewServiceAreaRepository(db *sqlx.DB) *ServiceAreaRepository {
	return &ServiceAreaRepository{db: db}
}

// Create adds a service area for a provider
func (r *ServiceAreaRepository) Create(ctx context.Context, a *ServiceArea) error {
	query := `
		INSERT INTO service_areas (id, provider_id, city, state, zip_codes, radius_miles, is_primary, created_at)
		VALUES (:id, :provider_id, :city, :state, :zip_codes, :radius_miles, :is_primary, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

// ListByProviderID returns all service areas for a provider, primary first
func (r *ServiceAreaRepository) ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]ServiceArea, error) {
	query := `
		SELECT * FROM service_areas
		WHERE provider_id = $1
		ORDER BY is_primary DESC, created_at ASC
	`
	areas := []ServiceArea{}
	err := r.db.SelectContext(ctx, &areas, query, providerID)
	return areas, err
}

// Delete removes a service area owned by the given provider
func (r *ServiceAreaRepository) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	query := `DELETE FROM service_areas WHERE id = $1 AND provider_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, providerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrServiceAreaNotFound
	}
	return nil
}

// Count returns the number of service areas for a provider
func (r *ServiceAreaRepository) Count(ctx context.Context, providerID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM service_areas WHERE provider_id = $1`
	var count int
	err := r.db.GetContext(ctx, &count, query, providerID)
	return count, err
}
