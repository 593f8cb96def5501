package review

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Review is one customer review of a provider (matches reviews table)
type Review struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`
	CustomerID uuid.UUID `db:"customer_id"`

	Rating         int            `db:"rating"`
	Title          sql.NullString `db:"title"`
	Comment        sql.NullString `db:"comment"`
	WouldRecommend bool           `db:"would_recommend"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// CustomerName is populated by a join with users
	CustomerName sql.NullString `db:"customer_name"`
}

// Stats is the per-provider review aggregate
type Stats struct {
	AvgRating    float64     `db:"avg_rating" json:"avg_rating"`
	ReviewCount  int         `db:"review_count" json:"review_count"`
	RecommendPct float64     `db:"recommend_pct" json:"recommend_pct"`
	Distribution map[int]int `json:"distribution"`
}
