package matching

import (
	"context"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

// CandidateSource loads the scorable providers for a category
type CandidateSource interface {
	CandidatesByCategory(ctx context.Context, categorySlug string) ([]provider.Provider, error)
}

// Service runs the matching quiz against stored providers
type Service struct {
	source CandidateSource
}

// NewService creates a matching service
func NewService(source CandidateSource) *Service {
	return &Service{source: source}
}

// Match loads the category's providers, ranks them against the quiz
// answers and returns the top matches. An empty category yields an empty
// match list, not an error.
func (s *Service) Match(ctx context.Context, req *QuizRequest) (*QuizResponse, error) {
	providers, err := s.source.CandidatesByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(providers))
	for i := range providers {
		candidates = append(candidates, toCandidate(&providers[i]))
	}

	query := Query{
		CategorySlug: req.Category,
		City:         req.City,
		Urgency:      req.Urgency,
		Budget:       req.Budget,
		Priority:     req.Priority,
	}
	ranked := Rank(candidates, query)

	matches := make([]MatchResponse, 0, len(ranked))
	for _, m := range ranked {
		p := findProvider(providers, m.Candidate.ID)
		if p == nil {
			continue
		}
		matches = append(matches, MatchResponse{
			Provider:        provider.ToResponse(p),
			MatchPercentage: m.Percentage,
			MatchReasons:    m.Reasons,
		})
	}

	return &QuizResponse{
		Matches:  matches,
		Category: req.Category,
		City:     req.City,
		Urgency:  req.Urgency,
		Budget:   req.Budget,
		Priority: req.Priority,
	}, nil
}

func toCandidate(p *provider.Provider) Candidate {
	c := Candidate{
		ID:               p.ID.String(),
		AvgRating:        p.Rating(),
		ReviewCount:      p.ReviewCount,
		YearsExperience:  p.Experience(),
		IsVerified:       p.IsVerified,
		IsFeatured:       p.IsFeatured,
		IsAvailableNow:   p.IsAvailableNow,
		AcceptsEmergency: p.AcceptsEmergency,
	}
	if p.Name.Valid {
		c.Name = p.Name.String
	}
	if p.City.Valid {
		c.City = p.City.String
	}
	if p.PricingTier.Valid {
		c.PricingTier = p.PricingTier.String
	}
	return c
}

func findProvider(providers []provider.Provider, id string) *provider.Provider {
	for i := range providers {
		if providers[i].ID.String() == id {
			return &providers[i]
		}
	}
	return nil
}
