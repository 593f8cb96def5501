package provider

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CreateRequest creates a draft profile for the authenticated user
type CreateRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=200"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
}

// UpdateRequest is a partial update of editable profile fields.
// Pointer fields distinguish "not sent" from "clear this value".
type UpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Tagline     *string `json:"tagline" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Skills      *string `json:"skills" validate:"omitempty,max=1000"`

	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Website *string `json:"website" validate:"omitempty,url,max=255"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`

	PricingTier     *string `json:"pricing_tier" validate:"omitempty,pricing_tier"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,gte=0,lte=80"`

	AcceptsEmergency  *bool   `json:"accepts_emergency"`
	EmergencyRateInfo *string `json:"emergency_rate_info" validate:"omitempty,max=100"`
	IsAvailableNow    *bool   `json:"is_available_now"`
}

// ListFilter holds directory query parameters
type ListFilter struct {
	CategorySlug string
	City         string
	PricingTier  string
	Search       string
	EmergencyOnly bool
	VerifiedOnly  bool
	Sort         string // rating, reviews, newest, name
	Page         int
	PerPage      int
}

// DayHours is one day's opening window in a hours request
type DayHours struct {
	Open   string `json:"open" validate:"omitempty,len=5"`
	Close  string `json:"close" validate:"omitempty,len=5"`
	Closed bool   `json:"closed"`
}

// HoursRequest sets the weekly schedule
type HoursRequest struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
	Notes     string   `json:"notes" validate:"omitempty,max=500"`
}

// ServiceAreaRequest adds a served area
type ServiceAreaRequest struct {
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	ZipCodes  string `json:"zip_codes" validate:"omitempty,max=500"`
	RadiusMi  *int   `json:"radius_miles" validate:"omitempty,gte=1,lte=500"`
	IsPrimary bool   `json:"is_primary"`
}

// Response is the public card shape used in lists and match results
type Response struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug,omitempty"`
	Tagline          string    `json:"tagline,omitempty"`
	Category         string    `json:"category,omitempty"`
	CategorySlug     string    `json:"category_slug,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	PricingTier      string    `json:"pricing_tier,omitempty"`
	YearsExperience  int       `json:"years_experience,omitempty"`
	AvgRating        float64   `json:"avg_rating"`
	ReviewCount      int       `json:"review_count"`
	IsVerified       bool      `json:"is_verified"`
	IsFeatured       bool      `json:"is_featured"`
	AcceptsEmergency bool      `json:"accepts_emergency"`
	IsAvailableNow   bool      `json:"is_available_now"`
	ImageURL         string    `json:"image_url,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
}

// DetailResponse is the full public profile
type DetailResponse struct {
	Response
	Description       string         `json:"description,omitempty"`
	Skills            []string       `json:"skills"`
	Email             string         `json:"email,omitempty"`
	Phone             string         `json:"phone,omitempty"`
	Website           string         `json:"website,omitempty"`
	Address           string         `json:"address,omitempty"`
	ZipCode           string         `json:"zip_code,omitempty"`
	EmergencyRateInfo string         `json:"emergency_rate_info,omitempty"`
	BusinessHours     *HoursResponse `json:"business_hours,omitempty"`
	ServiceAreas      []AreaResponse `json:"service_areas"`
	CreatedAt         time.Time      `json:"created_at"`
}

// OwnerResponse is what the owner sees: the full profile plus draft state,
// approval status, completion and wizard progress
type OwnerResponse struct {
	DetailResponse
	IsDraft        bool                `json:"is_draft"`
	ApprovalStatus ApprovalStatus      `json:"approval_status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	SubmittedAt    *time.Time          `json:"submitted_for_review_at,omitempty"`
	ApprovedAt     *time.Time          `json:"approved_at,omitempty"`
	Completeness   *CompletenessResult `json:"completeness"`
	Wizard         WizardProgress      `json:"wizard"`
}

// SubmitResponse is returned after a successful publication
type SubmitResponse struct {
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	Percentage     float64        `json:"percentage"`
	ApprovedAt     time.Time      `json:"approved_at"`
}

// HoursResponse mirrors the stored weekly schedule
type HoursResponse struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
	Notes     string   `json:"notes,omitempty"`
}

// AreaResponse is a public service area
type AreaResponse struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCodes  string    `json:"zip_codes,omitempty"`
	RadiusMi  int       `json:"radius_miles,omitempty"`
	IsPrimary bool      `json:"is_primary"`
}

// WizardStepResponse is returned after applying a wizard step
type WizardStepResponse struct {
	NextStep     Step                `json:"next_step"`
	Completeness *CompletenessResult `json:"completeness"`
}

// ToResponse converts a Provider to its public card shape
func ToResponse(p *Provider) Response {
	return Response{
		ID:              p.ID,
		Name:            nullStr(p.Name),
		Slug:            nullStr(p.Slug),
		Tagline:         nullStr(p.Tagline),
		Category:        nullStr(p.CategoryName),
		CategorySlug:    nullStr(p.CategorySlug),
		City:            nullStr(p.City),
		State:           nullStr(p.State),
		PricingTier:     nullStr(p.PricingTier),
		YearsExperience: p.Experience(),
		AvgRating:       p.Rating(),
		ReviewCount:     p.ReviewCount,
		IsVerified:      p.IsVerified,
		IsFeatured:      p.IsFeatured,
		AcceptsEmergency: p.AcceptsEmergency,
		IsAvailableNow:   p.IsAvailableNow,
		ImageURL:        nullStr(p.ImageURL),
		LogoURL:         nullStr(p.LogoURL),
	}
}

// ToDetailResponse converts a Provider plus sub-records to the full shape
func ToDetailResponse(p *Provider, hours *BusinessHours, areas []ServiceArea) DetailResponse {
	resp := DetailResponse{
		Response:          ToResponse(p),
		Description:       nullStr(p.Description),
		Skills:            p.SkillsList(),
		Email:             nullStr(p.Email),
		Phone:             nullStr(p.Phone),
		Website:           nullStr(p.Website),
		Address:           nullStr(p.Address),
		ZipCode:           nullStr(p.ZipCode),
		EmergencyRateInfo: nullStr(p.EmergencyRateInfo),
		ServiceAreas:      make([]AreaResponse, 0, len(areas)),
		CreatedAt:         p.CreatedAt,
	}
	if hours != nil {
		resp.BusinessHours = ToHoursResponse(hours)
	}
	for _, a := range areas {
		resp.ServiceAreas = append(resp.ServiceAreas, ToAreaResponse(&a))
	}
	return resp
}

// ToOwnerResponse builds the owner's view including completion state
func ToOwnerResponse(p *Provider, hours *BusinessHours, areas []ServiceArea, completeness *CompletenessResult) OwnerResponse {
	resp := OwnerResponse{
		DetailResponse:  ToDetailResponse(p, hours, areas),
		IsDraft:         p.IsDraft,
		ApprovalStatus:  p.ApprovalStatus,
		RejectionReason: nullStr(p.RejectionReason),
		Completeness:    completeness,
		Wizard:          Progress(p),
	}
	if p.SubmittedForReviewAt.Valid {
		t := p.SubmittedForReviewAt.Time
		resp.SubmittedAt = &t
	}
	if p.ApprovedAt.Valid {
		t := p.ApprovedAt.Time
		resp.ApprovedAt = &t
	}
	return resp
}

// ToHoursResponse converts the stored schedule
func ToHoursResponse(h *BusinessHours) *HoursResponse {
	return &HoursResponse{
		Monday:    DayHours{Open: nullStr(h.MondayOpen), Close: nullStr(h.MondayClose), Closed: h.MondayClosed},
		Tuesday:   DayHours{Open: nullStr(h.TuesdayOpen), Close: nullStr(h.TuesdayClose), Closed: h.TuesdayClosed},
		Wednesday: DayHours{Open: nullStr(h.WednesdayOpen), Close: nullStr(h.WednesdayClose), Closed: h.WednesdayClosed},
		Thursday:  DayHours{Open: nullStr(h.ThursdayOpen), Close: nullStr(h.ThursdayClose), Closed: h.ThursdayClosed},
		Friday:    DayHours{Open: nullStr(h.FridayOpen), Close: nullStr(h.FridayClose), Closed: h.FridayClosed},
		Saturday:  DayHours{Open: nullStr(h.SaturdayOpen), Close: nullStr(h.SaturdayClose), Closed: h.SaturdayClosed},
		Sunday:    DayHours{Open: nullStr(h.SundayOpen), Close: nullStr(h.SundayClose), Closed: h.SundayClosed},
		Notes:     nullStr(h.Notes),
	}
}

// ToAreaResponse converts a service area
func ToAreaResponse(a *ServiceArea) AreaResponse {
	resp := AreaResponse{
		ID:        a.ID,
		City:      a.City,
		State:     a.State,
		ZipCodes:  nullStr(a.ZipCodes),
		IsPrimary: a.IsPrimary,
	}
	if a.RadiusMi.Valid {
		resp.RadiusMi = int(a.RadiusMi.Int64)
	}
	return resp
}

func nullStr(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
