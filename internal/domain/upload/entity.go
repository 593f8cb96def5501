package upload

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Kind is the upload target on the provider profile
type Kind string

const (
	KindProfileImage Kind = "profile_image"
	KindLogo         Kind = "logo"
	KindGallery      Kind = "gallery"
)

// IsValidKind reports whether the value is a known upload kind
func IsValidKind(k string) bool {
	switch Kind(k) {
	case KindProfileImage, KindLogo, KindGallery:
		return true
	}
	return false
}

// ProviderImage is one gallery image (matches provider_images table)
type ProviderImage struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`

	URL          string         `db:"url"`
	ThumbnailURL string         `db:"thumbnail_url"`
	ContentType  string         `db:"content_type"`
	Caption      sql.NullString `db:"caption"`
	SortOrder    int            `db:"sort_order"`

	CreatedAt time.Time `db:"created_at"`
}
