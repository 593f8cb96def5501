package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

// ReviewRepository is the persistence surface the service needs
type ReviewRepository interface {
	Create(ctx context.Context, rev *Review) error
	ListByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]Review, int, error)
	Exists(ctx context.Context, providerID, customerID uuid.UUID) (bool, error)
	StatsByProviderID(ctx context.Context, providerID uuid.UUID) (*Stats, error)
}

// ProviderGetter resolves review targets
type ProviderGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error)
}

// Service implements review operations
type Service struct {
	repo      ReviewRepository
	providers ProviderGetter
}

// NewService creates a review service
func NewService(repo ReviewRepository, providers ProviderGetter) *Service {
	return &Service{repo: repo, providers: providers}
}

// Create submits one review per customer per provider
func (s *Service) Create(ctx context.Context, providerID, customerID uuid.UUID, req *CreateRequest) (*Response, error) {
	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if p.UserID == customerID {
		return nil, ErrOwnProfile
	}

	exists, err := s.repo.Exists(ctx, providerID, customerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	rev := &Review{
		ID:             uuid.New(),
		ProviderID:     providerID,
		CustomerID:     customerID,
		Rating:         req.Rating,
		Title:          sql.NullString{String: req.Title, Valid: req.Title != ""},
		Comment:        sql.NullString{String: req.Comment, Valid: req.Comment != ""},
		WouldRecommend: req.WouldRecommend,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	resp := ToResponse(rev)
	return &resp, nil
}

// List returns a review page with aggregates for a provider
func (s *Service) List(ctx context.Context, providerID uuid.UUID, limit, offset int) (*ListResponse, error) {
	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 50 {
		limit = 20
	}
	reviews, _, err := s.repo.ListByProviderID(ctx, providerID, limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.StatsByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	result := make([]Response, 0, len(reviews))
	for i := range reviews {
		result = append(result, ToResponse(&reviews[i]))
	}
	return &ListResponse{Reviews: result, Stats: stats}, nil
}
