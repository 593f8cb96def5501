package upload

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrImageNotFound = errors.New("image not found")

// ImageRepository handles gallery image persistence
type ImageRepository struct {
	db *sqlx.DB
}

// NewImageRepository creates a gallery image repository
func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create inserts a gallery image
func (r *ImageRepository) Create(ctx context.Context, img *ProviderImage) error {
	query := `
		INSERT INTO provider_images (id, provider_id, url, thumbnail_url, content_type, caption, sort_order, created_at)
		VALUES (:id, :provider_id, :url, :thumbnail_url, :content_type, :caption, :sort_order, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, img)
	return err
}

// GetByID returns one gallery image
func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*ProviderImage, error) {
	var img ProviderImage
	err := r.db.GetContext(ctx, &img, `SELECT * FROM provider_images WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ListByProviderID returns a provider's gallery in display order
func (r *ImageRepository) ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]ProviderImage, error) {
	images := []ProviderImage{}
	query := `SELECT * FROM provider_images WHERE provider_id = $1 ORDER BY sort_order ASC, created_at ASC`
	err := r.db.SelectContext(ctx, &images, query, providerID)
	return images, err
}

// Delete removes a gallery image owned by the given provider
func (r *ImageRepository) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM provider_images WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrImageNotFound
	}
	return nil
}
