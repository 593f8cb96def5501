package provider

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// selectColumns is the shared projection: provider columns plus the
// category and review aggregates every read path needs.
const selectColumns = `
	p.*,
	c.slug AS category_slug,
	c.name AS category_name,
	COALESCE(r.avg_rating, 0) AS avg_rating,
	COALESCE(r.review_count, 0) AS review_count
`

const selectJoins = `
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN (
		SELECT provider_id, AVG(rating)::float AS avg_rating, COUNT(*) AS review_count
		FROM reviews
		GROUP BY provider_id
	) r ON r.provider_id = p.id
`

// Repository handles provider persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a provider repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new draft profile
func (r *Repository) Create(ctx context.Context, p *Provider) error {
	query := `
		INSERT INTO providers (
			id, user_id, category_id, name, slug,
			is_active, is_draft, approval_status,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :category_id, :name, :slug,
			:is_active, :is_draft, :approval_status,
			:created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

// GetByID returns a provider with category and rating aggregates
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Provider, error) {
	query := `SELECT ` + selectColumns + ` FROM providers p ` + selectJoins + ` WHERE p.id = $1`
	var p Provider
	err := r.db.GetContext(ctx, &p, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByUserID returns the profile owned by the given user
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Provider, error) {
	query := `SELECT ` + selectColumns + ` FROM providers p ` + selectJoins + ` WHERE p.user_id = $1`
	var p Provider
	err := r.db.GetContext(ctx, &p, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBySlug returns a public profile by its slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Provider, error) {
	query := `SELECT ` + selectColumns + ` FROM providers p ` + selectJoins + `
		WHERE p.slug = $1 AND p.is_active = true AND p.is_draft = false AND p.approval_status = 'approved'`
	var p Provider
	err := r.db.GetContext(ctx, &p, query, slug)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update persists all editable profile fields
func (r *Repository) Update(ctx context.Context, p *Provider) error {
	p.UpdatedAt = time.Now()
	query := `
		UPDATE providers SET
			category_id = :category_id,
			name = :name,
			slug = :slug,
			tagline = :tagline,
			description = :description,
			skills = :skills,
			email = :email,
			phone = :phone,
			website = :website,
			address = :address,
			city = :city,
			state = :state,
			zip_code = :zip_code,
			pricing_tier = :pricing_tier,
			years_experience = :years_experience,
			accepts_emergency = :accepts_emergency,
			emergency_rate_info = :emergency_rate_info,
			is_available_now = :is_available_now,
			updated_at = :updated_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

// UpdateApproval records a lifecycle transition
func (r *Repository) UpdateApproval(ctx context.Context, p *Provider) error {
	query := `
		UPDATE providers SET
			is_draft = :is_draft,
			approval_status = :approval_status,
			submitted_for_review_at = :submitted_for_review_at,
			approved_at = :approved_at,
			rejection_reason = :rejection_reason,
			updated_at = :updated_at
		WHERE id = :id
	`
	p.UpdatedAt = time.Now()
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

// SetImageURL updates the profile photo
func (r *Repository) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE providers SET image_url = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, url, id)
	return err
}

// SetLogoURL updates the business logo
func (r *Repository) SetLogoURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE providers SET logo_url = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, url, id)
	return err
}

// List returns public providers matching the directory filter, with total count
func (r *Repository) List(ctx context.Context, f ListFilter) ([]Provider, int, error) {
	where := []string{
		"p.is_active = true",
		"p.is_draft = false",
		"p.approval_status = 'approved'",
	}
	args := []interface{}{}
	argN := 1

	if f.CategorySlug != "" {
		where = append(where, fmt.Sprintf("c.slug = $%d", argN))
		args = append(args, f.CategorySlug)
		argN++
	}
	if f.City != "" {
		where = append(where, fmt.Sprintf("p.city ILIKE $%d", argN))
		args = append(args, "%"+f.City+"%")
		argN++
	}
	if f.PricingTier != "" {
		where = append(where, fmt.Sprintf("p.pricing_tier = $%d", argN))
		args = append(args, f.PricingTier)
		argN++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d OR p.skills ILIKE $%d)", argN, argN, argN))
		args = append(args, "%"+f.Search+"%")
		argN++
	}
	if f.EmergencyOnly {
		where = append(where, "p.accepts_emergency = true")
	}
	if f.VerifiedOnly {
		where = append(where, "p.is_verified = true")
	}

	whereClause := "WHERE " + strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*) FROM providers p LEFT JOIN categories c ON c.id = p.category_id ` + whereClause
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	orderBy := "p.is_featured DESC, avg_rating DESC, review_count DESC"
	switch f.Sort {
	case "reviews":
		orderBy = "review_count DESC, avg_rating DESC"
	case "newest":
		orderBy = "p.created_at DESC"
	case "name":
		orderBy = "p.name ASC"
	}

	if f.PerPage <= 0 || f.PerPage > 100 {
		f.PerPage = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	offset := (f.Page - 1) * f.PerPage

	query := fmt.Sprintf(
		`SELECT %s FROM providers p %s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		selectColumns, selectJoins, whereClause, orderBy, argN, argN+1,
	)
	args = append(args, f.PerPage, offset)

	providers := []Provider{}
	if err := r.db.SelectContext(ctx, &providers, query, args...); err != nil {
		return nil, 0, err
	}
	return providers, total, nil
}

// ListEmergency returns approved providers accepting emergency requests,
// available-now first
func (r *Repository) ListEmergency(ctx context.Context, city string) ([]Provider, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM providers p ` + selectJoins + `
		WHERE p.is_active = true AND p.is_draft = false AND p.approval_status = 'approved'
		  AND p.accepts_emergency = true
	`
	args := []interface{}{}
	if city != "" {
		query += ` AND p.city ILIKE $1`
		args = append(args, "%"+city+"%")
	}
	query += ` ORDER BY p.is_available_now DESC, p.is_verified DESC, avg_rating DESC`

	providers := []Provider{}
	err := r.db.SelectContext(ctx, &providers, query, args...)
	return providers, err
}

// CandidatesByCategory returns every public provider in a category for
// match scoring. Filtering beyond the category happens in memory.
func (r *Repository) CandidatesByCategory(ctx context.Context, categorySlug string) ([]Provider, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM providers p ` + selectJoins + `
		WHERE p.is_active = true AND p.is_draft = false AND p.approval_status = 'approved'
		  AND c.slug = $1
	`
	providers := []Provider{}
	err := r.db.SelectContext(ctx, &providers, query, categorySlug)
	return providers, err
}

// SlugExists reports whether a profile slug is taken by another provider
func (r *Repository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM providers WHERE slug = $1 AND id <> $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, slug, excludeID)
	return exists, err
}
