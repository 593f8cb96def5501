package favorite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

// Favorite is a saved provider (matches favorites table)
type Favorite struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	ProviderID uuid.UUID `db:"provider_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repository handles favorite persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a favorite repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Add saves a provider; saving twice is a no-op
func (r *Repository) Add(ctx context.Context, userID, providerID uuid.UUID) error {
	query := `
		INSERT INTO favorites (id, user_id, provider_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, provider_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, providerID, time.Now())
	return err
}

// Remove unsaves a provider
func (r *Repository) Remove(ctx context.Context, userID, providerID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND provider_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, providerID)
	return err
}

// ListProviders returns the user's saved providers, most recent first
func (r *Repository) ListProviders(ctx context.Context, userID uuid.UUID) ([]provider.Provider, error) {
	query := `
		SELECT p.*,
			c.slug AS category_slug,
			c.name AS category_name,
			COALESCE(rv.avg_rating, 0) AS avg_rating,
			COALESCE(rv.review_count, 0) AS review_count
		FROM favorites f
		JOIN providers p ON p.id = f.provider_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN (
			SELECT provider_id, AVG(rating)::float AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			GROUP BY provider_id
		) rv ON rv.provider_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	providers := []provider.Provider{}
	err := r.db.SelectContext(ctx, &providers, query, userID)
	return providers, err
}

// IsFavorite reports whether the user saved the provider
func (r *Repository) IsFavorite(ctx context.Context, userID, providerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND provider_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, providerID)
	return exists, err
}
