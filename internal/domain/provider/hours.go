package provider

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BusinessHours is the one-to-one availability record for a provider
// (matches business_hours table)
type BusinessHours struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`

	MondayOpen      sql.NullString `db:"monday_open"`
	MondayClose     sql.NullString `db:"monday_close"`
	MondayClosed    bool           `db:"monday_closed"`
	TuesdayOpen     sql.NullString `db:"tuesday_open"`
	TuesdayClose    sql.NullString `db:"tuesday_close"`
	TuesdayClosed   bool           `db:"tuesday_closed"`
	WednesdayOpen   sql.NullString `db:"wednesday_open"`
	WednesdayClose  sql.NullString `db:"wednesday_close"`
	WednesdayClosed bool           `db:"wednesday_closed"`
	ThursdayOpen    sql.NullString `db:"thursday_open"`
	ThursdayClose   sql.NullString `db:"thursday_close"`
	ThursdayClosed  bool           `db:"thursday_closed"`
	FridayOpen      sql.NullString `db:"friday_open"`
	FridayClose     sql.NullString `db:"friday_close"`
	FridayClosed    bool           `db:"friday_closed"`
	SaturdayOpen    sql.NullString `db:"saturday_open"`
	SaturdayClose   sql.NullString `db:"saturday_close"`
	SaturdayClosed  bool           `db:"saturday_closed"`
	SundayOpen      sql.NullString `db:"sunday_open"`
	SundayClose     sql.NullString `db:"sunday_close"`
	SundayClosed    bool           `db:"sunday_closed"`

	Notes sql.NullString `db:"notes"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HoursRepository handles business hours persistence
type HoursRepository struct {
	db *sqlx.DB
}

// NewHoursRepository creates a business hours repository
func NewHoursRepository(db *sqlx.DB) *HoursRepository {
	return &HoursRepository{db: db}
}

// Upsert creates or replaces the hours record for a provider
func (r *HoursRepository) Upsert(ctx context.Context, h *BusinessHours) error {
	query := `
		INSERT INTO business_hours (
			id, provider_id,
			monday_open, monday_close, monday_closed,
			tuesday_open, tuesday_close, tuesday_closed,
			wednesday_open, wednesday_close, wednesday_closed,
			thursday_open, thursday_close, thursday_closed,
			friday_open, friday_close, friday_closed,
			saturday_open, saturday_close, saturday_closed,
			sunday_open, sunday_close, sunday_closed,
			notes, created_at, updated_at
		) VALUES (
			:id, :provider_id,
			:monday_open, :monday_close, :monday_closed,
			:tuesday_open, :tuesday_close, :tuesday_closed,
			:wednesday_open, :wednesday_close, :wednesday_closed,
			:thursday_open, :thursday_close, :thursday_closed,
			:friday_open, :friday_close, :friday_closed,
			:saturday_open, :saturday_close, :saturday_closed,
			:sunday_open, :sunday_close, :sunday_closed,
			:notes, :created_at, :updated_at
		)
		ON CONFLICT (provider_id) DO UPDATE SET
			monday_open = EXCLUDED.monday_open, monday_close = EXCLUDED.monday_close, monday_closed = EXCLUDED.monday_closed,
			tuesday_open = EXCLUDED.tuesday_open, tuesday_close = EXCLUDED.tuesday_close, tuesday_closed = EXCLUDED.tuesday_closed,
			wednesday_open = EXCLUDED.wednesday_open, wednesday_close = EXCLUDED.wednesday_close, wednesday_closed = EXCLUDED.wednesday_closed,
			thursday_open = EXCLUDED.thursday_open, thursday_close = EXCLUDED.thursday_close, thursday_closed = EXCLUDED.thursday_closed,
			friday_open = EXCLUDED.friday_open, friday_close = EXCLUDED.friday_close, friday_closed = EXCLUDED.friday_closed,
			saturday_open = EXCLUDED.saturday_open, saturday_close = EXCLUDED.saturday_close, saturday_closed = EXCLUDED.saturday_closed,
			sunday_open = EXCLUDED.sunday_open, sunday_close = EXCLUDED.sunday_close, sunday_closed = EXCLUDED.sunday_closed,
			notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, h)
	return err
}

// GetByProviderID returns the hours record for a provider
func (r *HoursRepository) GetByProviderID(ctx context.Context, providerID uuid.UUID) (*BusinessHours, error) {
	query := `SELECT * FROM business_hours WHERE provider_id = $1`
	var h BusinessHours
	err := r.db.GetContext(ctx, &h, query, providerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &h, err
}

// Exists reports whether a provider has set business hours
func (r *HoursRepository) Exists(ctx context.Context, providerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM business_hours WHERE provider_id = $1)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, providerID)
	return exists, err
}
