package review

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest submits a review for a provider
type CreateRequest struct {
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title          string `json:"title" validate:"omitempty,max=200"`
	Comment        string `json:"comment" validate:"omitempty,max=3000"`
	WouldRecommend bool   `json:"would_recommend"`
}

// Response is one public review
type Response struct {
	ID             uuid.UUID `json:"id"`
	Rating         int       `json:"rating"`
	Title          string    `json:"title,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	WouldRecommend bool      `json:"would_recommend"`
	CustomerName   string    `json:"customer_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListResponse pairs a review page with the provider's aggregates
type ListResponse struct {
	Reviews []Response `json:"reviews"`
	Stats   *Stats     `json:"stats"`
}

// ToResponse converts a review to its public shape
func ToResponse(r *Review) Response {
	resp := Response{
		ID:             r.ID,
		Rating:         r.Rating,
		WouldRecommend: r.WouldRecommend,
		CreatedAt:      r.CreatedAt,
	}
	if r.Title.Valid {
		resp.Title = r.Title.String
	}
	if r.Comment.Valid {
		resp.Comment = r.Comment.String
	}
	if r.CustomerName.Valid {
		resp.CustomerName = r.CustomerName.String
	}
	return resp
}
