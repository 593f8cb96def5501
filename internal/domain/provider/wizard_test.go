package provider_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

func TestApplyBasicInfo(t *testing.T) {
	catID := uuid.New()
	in := provider.BasicInfoInput{
		Name:        "Ace Plumbing",
		Tagline:     "Fast and friendly",
		Description: "Residential plumbing",
		CategoryID:  catID.String(),
		Skills:      "pipes, drains",
	}

	got, next := provider.ApplyBasicInfo(provider.Provider{}, in)

	if got.Name.String != "Ace Plumbing" || !got.Name.Valid {
		t.Errorf("name = %+v", got.Name)
	}
	if !got.CategoryID.Valid || got.CategoryID.UUID != catID {
		t.Errorf("category = %+v, want %s", got.CategoryID, catID)
	}
	if next != provider.StepContact {
		t.Errorf("next = %s, want %s", next, provider.StepContact)
	}
}

func TestApplyBasicInfoBadCategory(t *testing.T) {
	got, _ := provider.ApplyBasicInfo(provider.Provider{}, provider.BasicInfoInput{
		Name:       "Ace",
		CategoryID: "not-a-uuid",
	})
	if got.CategoryID.Valid {
		t.Errorf("category = %+v, want unset", got.CategoryID)
	}
}

func TestApplyContactClearsOmittedFields(t *testing.T) {
	p := provider.Provider{
		Email: sql.NullString{String: "old@example.com", Valid: true},
	}
	got, next := provider.ApplyContact(p, provider.ContactInput{Phone: "555-0100"})

	if got.Email.Valid {
		t.Errorf("email = %+v, want cleared", got.Email)
	}
	if got.Phone.String != "555-0100" {
		t.Errorf("phone = %+v", got.Phone)
	}
	if next != provider.StepBusiness {
		t.Errorf("next = %s, want %s", next, provider.StepBusiness)
	}
}

func TestApplyBusiness(t *testing.T) {
	years := 12
	got, next := provider.ApplyBusiness(provider.Provider{}, provider.BusinessInput{
		PricingTier:     "$$",
		YearsExperience: &years,
	})

	if got.PricingTier.String != "$$" {
		t.Errorf("pricing = %+v", got.PricingTier)
	}
	if !got.YearsExperience.Valid || got.YearsExperience.Int32 != 12 {
		t.Errorf("years = %+v", got.YearsExperience)
	}
	if next != provider.StepMedia {
		t.Errorf("next = %s, want %s", next, provider.StepMedia)
	}
}

func TestApplyEmergency(t *testing.T) {
	got, next := provider.ApplyEmergency(provider.Provider{}, provider.EmergencyInput{
		AcceptsEmergency:  true,
		EmergencyRateInfo: "1.5x after hours",
		IsAvailableNow:    true,
	})

	if !got.AcceptsEmergency || !got.IsAvailableNow {
		t.Errorf("flags not applied: %+v", got)
	}
	if next != provider.StepReview {
		t.Errorf("next = %s, want %s", next, provider.StepReview)
	}
}

func TestAcknowledgeMedia(t *testing.T) {
	before := provider.Provider{
		Name: sql.NullString{String: "Ace Plumbing", Valid: true},
	}
	got, next := provider.AcknowledgeMedia(before)

	if got != before {
		t.Errorf("profile changed: %+v", got)
	}
	if next != provider.StepEmergency {
		t.Errorf("next = %s, want %s", next, provider.StepEmergency)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	p := provider.Provider{}
	provider.ApplyBasicInfo(p, provider.BasicInfoInput{Name: "Ace"})
	if p.Name.Valid {
		t.Error("input profile was mutated")
	}
}

func TestCurrentStep(t *testing.T) {
	catID := uuid.NullUUID{UUID: uuid.New(), Valid: true}

	tests := []struct {
		name string
		p    provider.Provider
		want provider.Step
	}{
		{
			name: "empty profile starts at basic info",
			p:    provider.Provider{},
			want: provider.StepBasicInfo,
		},
		{
			name: "missing description stays on basic info",
			p: provider.Provider{
				Name:       str("Ace"),
				CategoryID: catID,
			},
			want: provider.StepBasicInfo,
		},
		{
			name: "basic done moves to contact",
			p: provider.Provider{
				Name:        str("Ace"),
				Description: str("desc"),
				CategoryID:  catID,
			},
			want: provider.StepContact,
		},
		{
			name: "contact done moves to business",
			p: provider.Provider{
				Name:        str("Ace"),
				Description: str("desc"),
				CategoryID:  catID,
				Email:       str("a@b.c"),
				Phone:       str("555"),
				City:        str("Austin"),
			},
			want: provider.StepBusiness,
		},
		{
			name: "pricing set reaches review, media and emergency never block",
			p: provider.Provider{
				Name:        str("Ace"),
				Description: str("desc"),
				CategoryID:  catID,
				Email:       str("a@b.c"),
				Phone:       str("555"),
				City:        str("Austin"),
				PricingTier: str("$$"),
			},
			want: provider.StepReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.CurrentStep(&tt.p); got != tt.want {
				t.Errorf("CurrentStep() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextStep(t *testing.T) {
	if got := provider.NextStep(provider.StepBasicInfo); got != provider.StepContact {
		t.Errorf("NextStep(basic_info) = %s", got)
	}
	if got := provider.NextStep(provider.StepReview); got != provider.StepReview {
		t.Errorf("NextStep(review) = %s, want review", got)
	}
	if got := provider.NextStep(provider.Step("bogus")); got != provider.StepReview {
		t.Errorf("NextStep(bogus) = %s, want review", got)
	}
}
