package review

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles review persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a review repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review
func (r *Repository) Create(ctx context.Context, rev *Review) error {
	query := `
		INSERT INTO reviews (id, provider_id, customer_id, rating, title, comment, would_recommend, created_at, updated_at)
		VALUES (:id, :provider_id, :customer_id, :rating, :title, :comment, :would_recommend, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, rev)
	return err
}

// ListByProviderID returns reviews for a provider, newest first
func (r *Repository) ListByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]Review, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reviews WHERE provider_id = $1`, providerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT rv.*, NULLIF(TRIM(COALESCE(u.first_name, '') || ' ' || COALESCE(u.last_name, '')), '') AS customer_name
		FROM reviews rv
		JOIN users u ON u.id = rv.customer_id
		WHERE rv.provider_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3
	`
	reviews := []Review{}
	err := r.db.SelectContext(ctx, &reviews, query, providerID, limit, offset)
	return reviews, total, err
}

// Exists reports whether the customer already reviewed the provider
func (r *Repository) Exists(ctx context.Context, providerID, customerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE provider_id = $1 AND customer_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, providerID, customerID)
	return exists, err
}

// StatsByProviderID computes the rating aggregates the matcher and the
// profile page consume
func (r *Repository) StatsByProviderID(ctx context.Context, providerID uuid.UUID) (*Stats, error) {
	var row struct {
		AvgRating    sql.NullFloat64 `db:"avg_rating"`
		ReviewCount  int             `db:"review_count"`
		RecommendPct sql.NullFloat64 `db:"recommend_pct"`
	}
	query := `
		SELECT
			AVG(rating)::float AS avg_rating,
			COUNT(*) AS review_count,
			AVG(CASE WHEN would_recommend THEN 100.0 ELSE 0.0 END) AS recommend_pct
		FROM reviews
		WHERE provider_id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, providerID); err != nil {
		return nil, err
	}

	stats := &Stats{
		ReviewCount:  row.ReviewCount,
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if row.AvgRating.Valid {
		stats.AvgRating = row.AvgRating.Float64
	}
	if row.RecommendPct.Valid {
		stats.RecommendPct = row.RecommendPct.Float64
	}

	type bucket struct {
		Rating int `db:"rating"`
		Count  int `db:"count"`
	}
	buckets := []bucket{}
	distQuery := `SELECT rating, COUNT(*) AS count FROM reviews WHERE provider_id = $1 GROUP BY rating`
	if err := r.db.SelectContext(ctx, &buckets, distQuery, providerID); err != nil {
		return nil, err
	}
	for _, b := range buckets {
		stats.Distribution[b.Rating] = b.Count
	}
	return stats, nil
}
