package provider_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
)

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// fullProfile fills every tracked field
func fullProfile() *provider.Provider {
	return &provider.Provider{
		Name:              str("Ace Plumbing"),
		Tagline:           str("Fast and friendly"),
		Description:       str("Residential plumbing repairs"),
		CategoryID:        uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Skills:            str("pipes, drains, water heaters"),
		Email:             str("ace@example.com"),
		Phone:             str("555-0100"),
		City:              str("Austin"),
		State:             str("TX"),
		ZipCode:           str("78701"),
		PricingTier:       str("$$"),
		YearsExperience:   sql.NullInt32{Int32: 8, Valid: true},
		ImageURL:          str("/uploads/ace.jpg"),
		LogoURL:           str("/uploads/ace-logo.png"),
		AcceptsEmergency:  true,
		EmergencyRateInfo: str("1.5x after hours"),
	}
}

func TestCompleteness(t *testing.T) {
	t.Run("empty profile is zero percent", func(t *testing.T) {
		got := provider.Completeness(&provider.Provider{}, false, 0)
		if got.Percentage != 0 {
			t.Errorf("percentage = %v, want 0", got.Percentage)
		}
		if got.Filled != 0 || got.Total != 18 {
			t.Errorf("filled/total = %d/%d, want 0/18", got.Filled, got.Total)
		}
		if got.CanSubmit {
			t.Error("empty profile can submit")
		}
		if len(got.MissingFields) != 18 {
			t.Errorf("missing = %d fields, want 18", len(got.MissingFields))
		}
	})

	t.Run("full profile is one hundred percent", func(t *testing.T) {
		got := provider.Completeness(fullProfile(), true, 1)
		if got.Percentage != 100 {
			t.Errorf("percentage = %v, want 100", got.Percentage)
		}
		if got.Filled != 18 {
			t.Errorf("filled = %d, want 18", got.Filled)
		}
		if !got.CanSubmit {
			t.Error("full profile cannot submit")
		}
		if len(got.MissingFields) != 0 {
			t.Errorf("missing = %v, want none", got.MissingFields)
		}
	})

	t.Run("two of eighteen rounds to 11.1", func(t *testing.T) {
		p := &provider.Provider{
			Name:  str("Ace"),
			Email: str("ace@example.com"),
		}
		got := provider.Completeness(p, false, 0)
		if got.Percentage != 11.1 {
			t.Errorf("percentage = %v, want 11.1", got.Percentage)
		}
	})

	t.Run("nine of eighteen is exactly the threshold", func(t *testing.T) {
		p := &provider.Provider{
			Name:        str("Ace"),
			Tagline:     str("tag"),
			Description: str("desc"),
			CategoryID:  uuid.NullUUID{UUID: uuid.New(), Valid: true},
			Skills:      str("a, b"),
			Email:       str("a@b.c"),
			Phone:       str("555"),
			City:        str("Austin"),
			State:       str("TX"),
		}
		got := provider.Completeness(p, false, 0)
		if got.Percentage != 50 {
			t.Errorf("percentage = %v, want 50", got.Percentage)
		}
		if !got.CanSubmit {
			t.Error("50 percent profile cannot submit, threshold is inclusive")
		}
	})

	t.Run("whitespace-only text does not count", func(t *testing.T) {
		p := &provider.Provider{Name: str("   ")}
		got := provider.Completeness(p, false, 0)
		if got.Filled != 0 {
			t.Errorf("filled = %d, want 0", got.Filled)
		}
	})

	t.Run("zero years experience does not count", func(t *testing.T) {
		p := &provider.Provider{YearsExperience: sql.NullInt32{Int32: 0, Valid: true}}
		got := provider.Completeness(p, false, 0)
		if got.Filled != 0 {
			t.Errorf("filled = %d, want 0", got.Filled)
		}
	})

	t.Run("declining emergency work counts as incomplete", func(t *testing.T) {
		p := fullProfile()
		p.AcceptsEmergency = false
		got := provider.Completeness(p, true, 1)
		if got.Filled != 17 {
			t.Errorf("filled = %d, want 17", got.Filled)
		}
		found := false
		for _, f := range got.MissingFields {
			if f == "accepts_emergency" {
				found = true
			}
		}
		if !found {
			t.Errorf("missing fields %v do not include accepts_emergency", got.MissingFields)
		}
	})

	t.Run("hours and areas come from sub-records", func(t *testing.T) {
		p := fullProfile()
		withBoth := provider.Completeness(p, true, 2)
		withNeither := provider.Completeness(p, false, 0)
		if withBoth.Filled-withNeither.Filled != 2 {
			t.Errorf("sub-records added %d slots, want 2", withBoth.Filled-withNeither.Filled)
		}
	})

	t.Run("tips are capped at three", func(t *testing.T) {
		got := provider.Completeness(&provider.Provider{}, false, 0)
		if len(got.Tips) != 3 {
			t.Errorf("tips = %d, want 3", len(got.Tips))
		}
	})
}

func TestCanSubmit(t *testing.T) {
	if provider.CanSubmit(&provider.Provider{}, false, 0) {
		t.Error("empty profile passed the submit gate")
	}
	if !provider.CanSubmit(fullProfile(), true, 1) {
		t.Error("full profile failed the submit gate")
	}
}
