package provider

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderRepository is the persistence surface the service needs
type ProviderRepository interface {
	Create(ctx context.Context, p *Provider) error
	GetByID(ctx context.Context, id uuid.UUID) (*Provider, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Provider, error)
	GetBySlug(ctx context.Context, slug string) (*Provider, error)
	Update(ctx context.Context, p *Provider) error
	UpdateApproval(ctx context.Context, p *Provider) error
	List(ctx context.Context, f ListFilter) ([]Provider, int, error)
	ListEmergency(ctx context.Context, city string) ([]Provider, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// HoursStore persists weekly schedules
type HoursStore interface {
	Upsert(ctx context.Context, h *BusinessHours) error
	GetByProviderID(ctx context.Context, providerID uuid.UUID) (*BusinessHours, error)
	Exists(ctx context.Context, providerID uuid.UUID) (bool, error)
}

// AreaStore persists service areas
type AreaStore interface {
	Create(ctx context.Context, a *ServiceArea) error
	ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]ServiceArea, error)
	Delete(ctx context.Context, id, providerID uuid.UUID) error
	Count(ctx context.Context, providerID uuid.UUID) (int, error)
}

// Service implements provider profile operations
type Service struct {
	repo  ProviderRepository
	hours HoursStore
	areas AreaStore
}

// NewService creates a provider service
func NewService(repo ProviderRepository, hours HoursStore, areas AreaStore) *Service {
	return &Service{repo: repo, hours: hours, areas: areas}
}

// Create starts a draft profile for the user. One profile per user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateRequest) (*OwnerResponse, error) {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileAlreadyExists
	} else if err != ErrProviderNotFound {
		return nil, err
	}

	now := time.Now()
	p := &Provider{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           sql.NullString{String: req.Name, Valid: true},
		IsActive:       true,
		IsDraft:        true,
		ApprovalStatus: StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.CategoryID != "" {
		if id, err := uuid.Parse(req.CategoryID); err == nil {
			p.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}

	slug, err := s.uniqueSlug(ctx, req.Name, p.ID)
	if err != nil {
		return nil, err
	}
	p.Slug = sql.NullString{String: slug, Valid: true}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.ownerView(ctx, p)
}

// GetMine returns the owner's view of their profile
func (s *Service) GetMine(ctx context.Context, userID uuid.UUID) (*OwnerResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ownerView(ctx, p)
}

// Update applies a partial update to the owner's profile
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *UpdateRequest) (*OwnerResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyNullString := func(dst *sql.NullString, v *string) {
		if v != nil {
			*dst = sql.NullString{String: *v, Valid: *v != ""}
		}
	}

	if req.Name != nil && *req.Name != "" && *req.Name != p.Name.String {
		p.Name = sql.NullString{String: *req.Name, Valid: true}
		slug, err := s.uniqueSlug(ctx, *req.Name, p.ID)
		if err != nil {
			return nil, err
		}
		p.Slug = sql.NullString{String: slug, Valid: true}
	}
	applyNullString(&p.Tagline, req.Tagline)
	applyNullString(&p.Description, req.Description)
	applyNullString(&p.Skills, req.Skills)
	applyNullString(&p.Email, req.Email)
	applyNullString(&p.Phone, req.Phone)
	applyNullString(&p.Website, req.Website)
	applyNullString(&p.Address, req.Address)
	applyNullString(&p.City, req.City)
	applyNullString(&p.State, req.State)
	applyNullString(&p.ZipCode, req.ZipCode)
	applyNullString(&p.PricingTier, req.PricingTier)
	applyNullString(&p.EmergencyRateInfo, req.EmergencyRateInfo)

	if req.CategoryID != nil {
		if id, err := uuid.Parse(*req.CategoryID); err == nil {
			p.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	if req.YearsExperience != nil {
		p.YearsExperience = sql.NullInt32{Int32: int32(*req.YearsExperience), Valid: true}
	}
	if req.AcceptsEmergency != nil {
		p.AcceptsEmergency = *req.AcceptsEmergency
	}
	if req.IsAvailableNow != nil {
		p.IsAvailableNow = *req.IsAvailableNow
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.ownerView(ctx, p)
}

// GetBySlug returns the public detail view of an approved profile
func (s *Service) GetBySlug(ctx context.Context, slug string) (*DetailResponse, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	hours, err := s.hours.GetByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.ListByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := ToDetailResponse(p, hours, areas)
	return &resp, nil
}

// List returns the public directory page
func (s *Service) List(ctx context.Context, f ListFilter) ([]Response, int, error) {
	providers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	result := make([]Response, 0, len(providers))
	for i := range providers {
		result = append(result, ToResponse(&providers[i]))
	}
	return result, total, nil
}

// EmergencyDirectory lists emergency-capable providers, optionally in a city
func (s *Service) EmergencyDirectory(ctx context.Context, city string) ([]Response, error) {
	providers, err := s.repo.ListEmergency(ctx, city)
	if err != nil {
		return nil, err
	}
	result := make([]Response, 0, len(providers))
	for i := range providers {
		result = append(result, ToResponse(&providers[i]))
	}
	return result, nil
}

// SubmitForReview publishes the profile. Submissions meeting the completion
// threshold are approved in the same call; below the threshold an
// IncompleteProfileError is returned with the current percentage.
func (s *Service) SubmitForReview(ctx context.Context, userID uuid.UUID) (*SubmitResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.IsDraft && p.ApprovalStatus == StatusApproved {
		return nil, ErrAlreadySubmitted
	}

	result, err := s.completeness(ctx, p)
	if err != nil {
		return nil, err
	}
	if result.Percentage < SubmitThreshold {
		return nil, &IncompleteProfileError{Percentage: result.Percentage, Threshold: SubmitThreshold}
	}

	now := time.Now()
	p.IsDraft = false
	p.ApprovalStatus = StatusApproved
	p.SubmittedForReviewAt = sql.NullTime{Time: now, Valid: true}
	p.ApprovedAt = sql.NullTime{Time: now, Valid: true}
	p.RejectionReason = sql.NullString{}

	if err := s.repo.UpdateApproval(ctx, p); err != nil {
		return nil, err
	}
	return &SubmitResponse{
		ApprovalStatus: p.ApprovalStatus,
		Percentage:     result.Percentage,
		ApprovedAt:     now,
	}, nil
}

// GetCompleteness recomputes the owner's completion state
func (s *Service) GetCompleteness(ctx context.Context, userID uuid.UUID) (*CompletenessResult, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.completeness(ctx, p)
}

// ApplyBasicInfoStep applies the basic_info wizard step and persists it
func (s *Service) ApplyBasicInfoStep(ctx context.Context, userID uuid.UUID, in BasicInfoInput) (*WizardStepResponse, error) {
	return s.applyStep(ctx, userID, func(p Provider) (Provider, Step, error) {
		updated, next := ApplyBasicInfo(p, in)
		if in.Name != "" && in.Name != p.Name.String {
			slug, err := s.uniqueSlug(ctx, in.Name, p.ID)
			if err != nil {
				return p, next, err
			}
			updated.Slug = sql.NullString{String: slug, Valid: true}
		}
		return updated, next, nil
	})
}

// ApplyContactStep applies the contact wizard step and persists it
func (s *Service) ApplyContactStep(ctx context.Context, userID uuid.UUID, in ContactInput) (*WizardStepResponse, error) {
	return s.applyStep(ctx, userID, func(p Provider) (Provider, Step, error) {
		updated, next := ApplyContact(p, in)
		return updated, next, nil
	})
}

// ApplyBusinessStep applies the business wizard step and persists it
func (s *Service) ApplyBusinessStep(ctx context.Context, userID uuid.UUID, in BusinessInput) (*WizardStepResponse, error) {
	return s.applyStep(ctx, userID, func(p Provider) (Provider, Step, error) {
		updated, next := ApplyBusiness(p, in)
		return updated, next, nil
	})
}

// ApplyMediaStep acknowledges the media wizard step. Images are uploaded
// separately, so this only reports progress and the next step.
func (s *Service) ApplyMediaStep(ctx context.Context, userID uuid.UUID) (*WizardStepResponse, error) {
	return s.applyStep(ctx, userID, func(p Provider) (Provider, Step, error) {
		updated, next := AcknowledgeMedia(p)
		return updated, next, nil
	})
}

// ApplyEmergencyStep applies the emergency wizard step and persists it
func (s *Service) ApplyEmergencyStep(ctx context.Context, userID uuid.UUID, in EmergencyInput) (*WizardStepResponse, error) {
	return s.applyStep(ctx, userID, func(p Provider) (Provider, Step, error) {
		updated, next := ApplyEmergency(p, in)
		return updated, next, nil
	})
}

func (s *Service) applyStep(ctx context.Context, userID uuid.UUID, apply func(Provider) (Provider, Step, error)) (*WizardStepResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated, next, err := apply(*p)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	result, err := s.completeness(ctx, &updated)
	if err != nil {
		return nil, err
	}
	return &WizardStepResponse{NextStep: next, Completeness: result}, nil
}

// SetHours replaces the owner's weekly schedule
func (s *Service) SetHours(ctx context.Context, userID uuid.UUID, req *HoursRequest) (*HoursResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	h := &BusinessHours{
		ID:         uuid.New(),
		ProviderID: p.ID,
		Notes:      sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	setDay := func(open, close *sql.NullString, closed *bool, d DayHours) {
		*open = sql.NullString{String: d.Open, Valid: d.Open != ""}
		*close = sql.NullString{String: d.Close, Valid: d.Close != ""}
		*closed = d.Closed
	}
	setDay(&h.MondayOpen, &h.MondayClose, &h.MondayClosed, req.Monday)
	setDay(&h.TuesdayOpen, &h.TuesdayClose, &h.TuesdayClosed, req.Tuesday)
	setDay(&h.WednesdayOpen, &h.WednesdayClose, &h.WednesdayClosed, req.Wednesday)
	setDay(&h.ThursdayOpen, &h.ThursdayClose, &h.ThursdayClosed, req.Thursday)
	setDay(&h.FridayOpen, &h.FridayClose, &h.FridayClosed, req.Friday)
	setDay(&h.SaturdayOpen, &h.SaturdayClose, &h.SaturdayClosed, req.Saturday)
	setDay(&h.SundayOpen, &h.SundayClose, &h.SundayClosed, req.Sunday)

	if err := s.hours.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return ToHoursResponse(h), nil
}

// GetHours returns the owner's weekly schedule, nil if unset
func (s *Service) GetHours(ctx context.Context, userID uuid.UUID) (*HoursResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	h, err := s.hours.GetByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	return ToHoursResponse(h), nil
}

// AddServiceArea adds an area served by the owner's profile
func (s *Service) AddServiceArea(ctx context.Context, userID uuid.UUID, req *ServiceAreaRequest) (*AreaResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	a := &ServiceArea{
		ID:         uuid.New(),
		ProviderID: p.ID,
		City:       req.City,
		State:      req.State,
		ZipCodes:   sql.NullString{String: req.ZipCodes, Valid: req.ZipCodes != ""},
		IsPrimary:  req.IsPrimary,
		CreatedAt:  time.Now(),
	}
	if req.RadiusMi != nil {
		a.RadiusMi = sql.NullInt64{Int64: int64(*req.RadiusMi), Valid: true}
	}
	if err := s.areas.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := ToAreaResponse(a)
	return &resp, nil
}

// ListServiceAreas returns the owner's areas
func (s *Service) ListServiceAreas(ctx context.Context, userID uuid.UUID) ([]AreaResponse, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.ListByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	result := make([]AreaResponse, 0, len(areas))
	for i := range areas {
		result = append(result, ToAreaResponse(&areas[i]))
	}
	return result, nil
}

// DeleteServiceArea removes one of the owner's areas
func (s *Service) DeleteServiceArea(ctx context.Context, userID, areaID uuid.UUID) error {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.areas.Delete(ctx, areaID, p.ID)
}

func (s *Service) completeness(ctx context.Context, p *Provider) (*CompletenessResult, error) {
	hasHours, err := s.hours.Exists(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	areaCount, err := s.areas.Count(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return Completeness(p, hasHours, areaCount), nil
}

func (s *Service) ownerView(ctx context.Context, p *Provider) (*OwnerResponse, error) {
	hours, err := s.hours.GetByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.ListByProviderID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	hasHours := hours != nil
	result := Completeness(p, hasHours, len(areas))
	resp := ToOwnerResponse(p, hours, areas, result)
	return &resp, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func (s *Service) uniqueSlug(ctx context.Context, name string, excludeID uuid.UUID) (string, error) {
	base := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if base == "" {
		base = "provider"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
