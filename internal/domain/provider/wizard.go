package provider

import (
	"database/sql"

	"github.com/google/uuid"
)

// Step is one stage of the profile setup wizard
type Step string

const (
	StepBasicInfo Step = "basic_info"
	StepContact   Step = "contact"
	StepBusiness  Step = "business"
	StepMedia     Step = "media"
	StepEmergency Step = "emergency"
	StepReview    Step = "review"
)

// StepOrder is the declared wizard progression
var StepOrder = []Step{StepBasicInfo, StepContact, StepBusiness, StepMedia, StepEmergency, StepReview}

// BasicInfoInput for the basic_info step
type BasicInfoInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Tagline     string `json:"tagline" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
	Skills      string `json:"skills" validate:"omitempty,max=1000"`
}

// ContactInput for the contact step
type ContactInput struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Website string `json:"website" validate:"omitempty,url,max=255"`
	Address string `json:"address" validate:"omitempty,max=255"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	ZipCode string `json:"zip_code" validate:"omitempty,max=20"`
}

// BusinessInput for the business step
type BusinessInput struct {
	PricingTier     string `json:"pricing_tier" validate:"omitempty,pricing_tier"`
	YearsExperience *int   `json:"years_experience" validate:"omitempty,gte=0,lte=80"`
}

// EmergencyInput for the emergency step
type EmergencyInput struct {
	AcceptsEmergency  bool   `json:"accepts_emergency"`
	EmergencyRateInfo string `json:"emergency_rate_info" validate:"omitempty,max=100"`
	IsAvailableNow    bool   `json:"is_available_now"`
}

// NextStep returns the step following the given one
func NextStep(s Step) Step {
	for i, step := range StepOrder {
		if step == s && i+1 < len(StepOrder) {
			return StepOrder[i+1]
		}
	}
	return StepReview
}

// ApplyBasicInfo applies the basic_info step to a copy of the profile and
// returns the updated profile with the next step. Pure function; the caller
// persists the result.
func ApplyBasicInfo(p Provider, in BasicInfoInput) (Provider, Step) {
	p.Name = sql.NullString{String: in.Name, Valid: in.Name != ""}
	p.Tagline = sql.NullString{String: in.Tagline, Valid: in.Tagline != ""}
	p.Description = sql.NullString{String: in.Description, Valid: in.Description != ""}
	p.Skills = sql.NullString{String: in.Skills, Valid: in.Skills != ""}
	if in.CategoryID != "" {
		if id, err := uuid.Parse(in.CategoryID); err == nil {
			p.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	return p, NextStep(StepBasicInfo)
}

// ApplyContact applies the contact step
func ApplyContact(p Provider, in ContactInput) (Provider, Step) {
	p.Email = sql.NullString{String: in.Email, Valid: in.Email != ""}
	p.Phone = sql.NullString{String: in.Phone, Valid: in.Phone != ""}
	p.Website = sql.NullString{String: in.Website, Valid: in.Website != ""}
	p.Address = sql.NullString{String: in.Address, Valid: in.Address != ""}
	p.City = sql.NullString{String: in.City, Valid: in.City != ""}
	p.State = sql.NullString{String: in.State, Valid: in.State != ""}
	p.ZipCode = sql.NullString{String: in.ZipCode, Valid: in.ZipCode != ""}
	return p, NextStep(StepContact)
}

// ApplyBusiness applies the business step
func ApplyBusiness(p Provider, in BusinessInput) (Provider, Step) {
	p.PricingTier = sql.NullString{String: in.PricingTier, Valid: in.PricingTier != ""}
	if in.YearsExperience != nil {
		p.YearsExperience = sql.NullInt32{Int32: int32(*in.YearsExperience), Valid: true}
	}
	return p, NextStep(StepBusiness)
}

// AcknowledgeMedia advances past the media step. Images are attached
// through the upload endpoints, so the step carries no fields of its own.
func AcknowledgeMedia(p Provider) (Provider, Step) {
	return p, NextStep(StepMedia)
}

// ApplyEmergency applies the emergency step
func ApplyEmergency(p Provider, in EmergencyInput) (Provider, Step) {
	p.AcceptsEmergency = in.AcceptsEmergency
	p.EmergencyRateInfo = sql.NullString{String: in.EmergencyRateInfo, Valid: in.EmergencyRateInfo != ""}
	p.IsAvailableNow = in.IsAvailableNow
	return p, NextStep(StepEmergency)
}

// CurrentStep derives the wizard position from the record itself: the first
// step whose required fields are missing. Media and emergency are optional
// steps and never block progression.
func CurrentStep(p *Provider) Step {
	if !textFilled(p.Name.Valid, p.Name.String) ||
		!textFilled(p.Description.Valid, p.Description.String) ||
		!p.CategoryID.Valid {
		return StepBasicInfo
	}
	if !textFilled(p.Email.Valid, p.Email.String) ||
		!textFilled(p.Phone.Valid, p.Phone.String) ||
		!textFilled(p.City.Valid, p.City.String) {
		return StepContact
	}
	if !textFilled(p.PricingTier.Valid, p.PricingTier.String) {
		return StepBusiness
	}
	return StepReview
}

// WizardProgress is returned alongside completeness for the setup UI
type WizardProgress struct {
	CurrentStep Step   `json:"current_step"`
	Steps       []Step `json:"steps"`
}

// Progress reports the derived wizard state for a profile
func Progress(p *Provider) WizardProgress {
	return WizardProgress{
		CurrentStep: CurrentStep(p),
		Steps:       StepOrder,
	}
}
