package upload

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/pkg/imaging"
	"github.com/findapro/findapro-api/internal/pkg/storage"
)

// ProviderMedia is the slice of the provider store uploads touch
type ProviderMedia interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*provider.Provider, error)
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
	SetLogoURL(ctx context.Context, id uuid.UUID, url string) error
}

// GalleryStore persists gallery records
type GalleryStore interface {
	Create(ctx context.Context, img *ProviderImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*ProviderImage, error)
	ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]ProviderImage, error)
	Delete(ctx context.Context, id, providerID uuid.UUID) error
}

// Result describes a stored upload
type Result struct {
	Kind         Kind      `json:"kind"`
	ID           uuid.UUID `json:"id,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	ContentType  string    `json:"content_type"`
}

// GalleryImageResponse is one public gallery entry
type GalleryImageResponse struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Caption      string    `json:"caption,omitempty"`
}

// Service validates, processes and stores provider media
type Service struct {
	providers ProviderMedia
	gallery   GalleryStore
	store     storage.Storage
	processor *imaging.Processor
	maxSize   int64
}

// NewService creates an upload service
func NewService(providers ProviderMedia, gallery GalleryStore, store storage.Storage, processor *imaging.Processor, maxSize int64) *Service {
	return &Service{
		providers: providers,
		gallery:   gallery,
		store:     store,
		processor: processor,
		maxSize:   maxSize,
	}
}

// Upload stores an image for the caller's profile. Profile images and
// logos replace the current URL and fill their completion slot; gallery
// images accumulate.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, kind Kind, file io.Reader, caption string) (*Result, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, _, err := storage.ValidateImage(file, s.maxSize)
	if err != nil {
		return nil, err
	}

	processed, err := s.processor.Process(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	ext := extFromContentType(processed.ContentType)
	baseKey := fmt.Sprintf("providers/%s/%s/%s", p.ID, kind, uuid.NewString())
	originalKey := baseKey + ext
	thumbKey := baseKey + "_thumb" + ext

	if err := s.store.Put(ctx, originalKey, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.store.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	url := s.store.GetURL(originalKey)
	thumbURL := s.store.GetURL(thumbKey)

	switch kind {
	case KindProfileImage:
		if err := s.providers.SetImageURL(ctx, p.ID, url); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, URL: url, ThumbnailURL: thumbURL, ContentType: processed.ContentType}, nil

	case KindLogo:
		if err := s.providers.SetLogoURL(ctx, p.ID, url); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, URL: url, ThumbnailURL: thumbURL, ContentType: processed.ContentType}, nil

	case KindGallery:
		img := &ProviderImage{
			ID:           uuid.New(),
			ProviderID:   p.ID,
			URL:          url,
			ThumbnailURL: thumbURL,
			ContentType:  processed.ContentType,
			Caption:      sql.NullString{String: caption, Valid: caption != ""},
			CreatedAt:    time.Now(),
		}
		if err := s.gallery.Create(ctx, img); err != nil {
			return nil, err
		}
		return &Result{Kind: kind, ID: img.ID, URL: url, ThumbnailURL: thumbURL, ContentType: processed.ContentType}, nil
	}

	return nil, fmt.Errorf("unknown upload kind %q", kind)
}

// ListGallery returns the caller's gallery
func (s *Service) ListGallery(ctx context.Context, userID uuid.UUID) ([]GalleryImageResponse, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	images, err := s.gallery.ListByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	result := make([]GalleryImageResponse, 0, len(images))
	for _, img := range images {
		entry := GalleryImageResponse{
			ID:           img.ID,
			URL:          img.URL,
			ThumbnailURL: img.ThumbnailURL,
		}
		if img.Caption.Valid {
			entry.Caption = img.Caption.String
		}
		result = append(result, entry)
	}
	return result, nil
}

// DeleteGalleryImage removes a gallery image and its stored files
func (s *Service) DeleteGalleryImage(ctx context.Context, userID, imageID uuid.UUID) error {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	img, err := s.gallery.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img.ProviderID != p.ID {
		return ErrImageNotFound
	}
	if err := s.gallery.Delete(ctx, imageID, p.ID); err != nil {
		return err
	}

	// Storage cleanup is best effort; the record is already gone
	for _, key := range []string{keyFromURL(s.store, img.URL), keyFromURL(s.store, img.ThumbnailURL)} {
		if key == "" {
			continue
		}
		if err := s.store.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to delete stored image")
		}
	}
	return nil
}

func extFromContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// keyFromURL strips the storage base URL prefix, returning empty when the
// URL is not ours
func keyFromURL(store storage.Storage, url string) string {
	base := store.GetURL("")
	if base == "" || len(url) <= len(base) || url[:len(base)] != base {
		return ""
	}
	return url[len(base):]
}
