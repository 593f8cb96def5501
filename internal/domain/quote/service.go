package quote

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

// QuoteRepository is the persistence surface the service needs
type QuoteRepository interface {
	Create(ctx context.Context, q *QuoteRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*QuoteRequest, error)
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]QuoteRequest, error)
	ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]QuoteRequest, error)
	Update(ctx context.Context, q *QuoteRequest) error
}

// ProviderDirectory resolves quote targets
type ProviderDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*provider.Provider, error)
}

// EventPublisher pushes quote events to connected providers. Publishing
// is best effort; a provider without an open connection misses nothing
// but the live ping.
type EventPublisher interface {
	PublishNewQuote(userID uuid.UUID, payload interface{})
}

// Service implements quote request operations
type Service struct {
	repo      QuoteRepository
	providers ProviderDirectory
	events    EventPublisher
}

// NewService creates a quote service
func NewService(repo QuoteRepository, providers ProviderDirectory, events EventPublisher) *Service {
	return &Service{repo: repo, providers: providers, events: events}
}

// Create opens a quote request with a provider and notifies them
func (s *Service) Create(ctx context.Context, customerID, providerID uuid.UUID, req *CreateRequest) (*Response, error) {
	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !p.IsPublic() {
		return nil, provider.ErrProviderNotFound
	}

	now := time.Now()
	q := &QuoteRequest{
		ID:             uuid.New(),
		ProviderID:     providerID,
		CustomerID:     customerID,
		Title:          req.Title,
		Description:    req.Description,
		Timeline:       req.Timeline,
		BudgetBand:     req.BudgetBand,
		IsEmergency:    req.IsEmergency,
		ContactPref:    req.ContactPref,
		ServiceAddress: sql.NullString{String: req.ServiceAddress, Valid: req.ServiceAddress != ""},
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.PublishNewQuote(p.UserID, map[string]interface{}{
			"quote_id":     q.ID,
			"title":        q.Title,
			"is_emergency": q.IsEmergency,
			"created_at":   q.CreatedAt,
		})
	}

	resp := ToResponse(q)
	return &resp, nil
}

// Get returns one quote request to a participant
func (s *Service) Get(ctx context.Context, actorID, quoteID uuid.UUID) (*Response, error) {
	q, err := s.getForActor(ctx, actorID, quoteID)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(q)
	return &resp, nil
}

// ListMine returns quote requests the customer opened
func (s *Service) ListMine(ctx context.Context, customerID uuid.UUID) ([]Response, error) {
	quotes, err := s.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toResponses(quotes), nil
}

// ListForProvider returns quote requests sent to the caller's profile
func (s *Service) ListForProvider(ctx context.Context, providerUserID uuid.UUID) ([]Response, error) {
	p, err := s.providers.GetByUserID(ctx, providerUserID)
	if err != nil {
		return nil, err
	}
	quotes, err := s.repo.ListByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toResponses(quotes), nil
}

// MarkViewed moves a pending request to viewed when the provider opens it
func (s *Service) MarkViewed(ctx context.Context, providerUserID, quoteID uuid.UUID) (*Response, error) {
	q, err := s.getForProvider(ctx, providerUserID, quoteID)
	if err != nil {
		return nil, err
	}
	if q.Status == StatusPending {
		if err := s.transition(ctx, q, StatusViewed); err != nil {
			return nil, err
		}
	}
	resp := ToResponse(q)
	return &resp, nil
}

// Respond records the provider's quote and moves the request to quoted
func (s *Service) Respond(ctx context.Context, providerUserID, quoteID uuid.UUID, req *RespondRequest) (*Response, error) {
	q, err := s.getForProvider(ctx, providerUserID, quoteID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(q.Status, StatusQuoted) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	q.Status = StatusQuoted
	q.QuoteAmount = sql.NullFloat64{Float64: req.Amount, Valid: true}
	q.QuoteMessage = sql.NullString{String: req.Message, Valid: req.Message != ""}
	q.QuotedAt = sql.NullTime{Time: now, Valid: true}
	q.UpdatedAt = now

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	resp := ToResponse(q)
	return &resp, nil
}

// Accept lets the customer take a quoted offer
func (s *Service) Accept(ctx context.Context, customerID, quoteID uuid.UUID) (*Response, error) {
	q, err := s.repo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.CustomerID != customerID {
		return nil, ErrNotParticipant
	}
	if err := s.transition(ctx, q, StatusAccepted); err != nil {
		return nil, err
	}
	resp := ToResponse(q)
	return &resp, nil
}

// Decline closes the request; either participant may decline
func (s *Service) Decline(ctx context.Context, actorID, quoteID uuid.UUID) (*Response, error) {
	q, err := s.getForActor(ctx, actorID, quoteID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, q, StatusDeclined); err != nil {
		return nil, err
	}
	resp := ToResponse(q)
	return &resp, nil
}

func (s *Service) transition(ctx context.Context, q *QuoteRequest, to Status) error {
	if !CanTransition(q.Status, to) {
		return ErrInvalidTransition
	}
	q.Status = to
	q.UpdatedAt = time.Now()
	return s.repo.Update(ctx, q)
}

// getForActor loads a quote the actor participates in, either as the
// customer or as the owner of the target provider profile
func (s *Service) getForActor(ctx context.Context, actorID, quoteID uuid.UUID) (*QuoteRequest, error) {
	q, err := s.repo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.CustomerID == actorID {
		return q, nil
	}
	p, err := s.providers.GetByID(ctx, q.ProviderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != actorID {
		return nil, ErrNotParticipant
	}
	return q, nil
}

func (s *Service) getForProvider(ctx context.Context, providerUserID, quoteID uuid.UUID) (*QuoteRequest, error) {
	q, err := s.repo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	p, err := s.providers.GetByID(ctx, q.ProviderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != providerUserID {
		return nil, ErrNotParticipant
	}
	return q, nil
}

func toResponses(quotes []QuoteRequest) []Response {
	result := make([]Response, 0, len(quotes))
	for i := range quotes {
		result = append(result, ToResponse(&quotes[i]))
	}
	return result
}
