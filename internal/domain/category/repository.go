package category

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Repository handles category database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new category repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Queries join against the same categories table the provider and
// favorite repositories reference.
const (
	listActiveQuery = `
		SELECT c.*,
			(SELECT COUNT(*) FROM providers p
			 WHERE p.category_id = c.id AND p.is_active = true AND p.approval_status = 'approved') AS provider_count
		FROM categories c
		WHERE c.is_active = true
		ORDER BY c.name
	`
	getBySlugQuery = `SELECT *, 0 AS provider_count FROM categories WHERE slug = $1 AND is_active = true`
)

// ListActive returns active categories with provider counts
func (r *Repository) ListActive(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.SelectContext(ctx, &categories, listActiveQuery)
	return categories, err
}

// GetBySlug returns a category by slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := r.db.GetContext(ctx, &c, getBySlugQuery, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &c, err
}
