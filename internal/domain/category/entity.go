package category

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Category represents a service category (matches categories table)
type Category struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"` // icon class name, e.g. "fa-wrench"
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`

	// ProviderCount is an aggregate, not a column
	ProviderCount int `db:"provider_count"`
}

// CategoryResponse for API responses
type CategoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	Icon          string `json:"icon,omitempty"`
	ProviderCount int    `json:"provider_count"`
}

// ToResponse converts entity to response
func (c *Category) ToResponse() *CategoryResponse {
	resp := &CategoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Slug:          c.Slug,
		ProviderCount: c.ProviderCount,
	}
	if c.Description.Valid {
		resp.Description = c.Description.String
	}
	if c.Icon.Valid {
		resp.Icon = c.Icon.String
	}
	return resp
}
