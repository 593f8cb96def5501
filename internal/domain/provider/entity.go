package provider

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus represents the profile approval lifecycle
// (matches approval_status enum)
type ApprovalStatus string

const (
	StatusDraft         ApprovalStatus = "draft"
	StatusPendingReview ApprovalStatus = "pending_review"
	StatusApproved      ApprovalStatus = "approved"
	StatusRejected      ApprovalStatus = "rejected"
	StatusSuspended     ApprovalStatus = "suspended"
)

// PricingTier is one of four ordered price levels
type PricingTier string

const (
	PricingBudget   PricingTier = "$"
	PricingModerate PricingTier = "$$"
	PricingPremium  PricingTier = "$$$"
	PricingLuxury   PricingTier = "$$$$"
)

// Provider represents a service provider profile (matches providers table)
type Provider struct {
	ID         uuid.UUID     `db:"id"`
	UserID     uuid.UUID     `db:"user_id"`
	CategoryID uuid.NullUUID `db:"category_id"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`

	// Basic info
	Name        sql.NullString `db:"name"`
	Slug        sql.NullString `db:"slug"`
	Tagline     sql.NullString `db:"tagline"`
	Description sql.NullString `db:"description"`
	Skills      sql.NullString `db:"skills"` // comma-separated list

	// Contact
	Email   sql.NullString `db:"email"`
	Phone   sql.NullString `db:"phone"`
	Website sql.NullString `db:"website"`

	// Location
	Address sql.NullString `db:"address"`
	City    sql.NullString `db:"city"`
	State   sql.NullString `db:"state"`
	ZipCode sql.NullString `db:"zip_code"`

	// Business details
	PricingTier     sql.NullString `db:"pricing_tier"`
	YearsExperience sql.NullInt32  `db:"years_experience"`

	// Media
	ImageURL sql.NullString `db:"image_url"`
	LogoURL  sql.NullString `db:"logo_url"`

	// Status flags
	IsVerified bool `db:"is_verified"`
	IsFeatured bool `db:"is_featured"`
	IsActive   bool `db:"is_active"`

	// Emergency & availability
	IsAvailableNow    bool           `db:"is_available_now"`
	AcceptsEmergency  bool           `db:"accepts_emergency"`
	EmergencyRateInfo sql.NullString `db:"emergency_rate_info"`

	// Approval lifecycle
	IsDraft              bool           `db:"is_draft"`
	ApprovalStatus       ApprovalStatus `db:"approval_status"`
	SubmittedForReviewAt sql.NullTime   `db:"submitted_for_review_at"`
	ApprovedAt           sql.NullTime   `db:"approved_at"`
	RejectionReason      sql.NullString `db:"rejection_reason"`

	// Review aggregates, populated by joins — not columns on providers
	AvgRating   sql.NullFloat64 `db:"avg_rating"`
	ReviewCount int             `db:"review_count"`

	// CategorySlug and CategoryName are populated by joins
	CategorySlug sql.NullString `db:"category_slug"`
	CategoryName sql.NullString `db:"category_name"`
}

// SkillsList returns skills as a trimmed list
func (p *Provider) SkillsList() []string {
	if !p.Skills.Valid {
		return []string{}
	}
	parts := strings.Split(p.Skills.String, ",")
	result := make([]string, 0, len(parts))
	for _, s := range parts {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Pricing returns the pricing tier, or empty if not set
func (p *Provider) Pricing() PricingTier {
	if !p.PricingTier.Valid {
		return ""
	}
	return PricingTier(p.PricingTier.String)
}

// Experience returns years of experience, 0 meaning not provided
func (p *Provider) Experience() int {
	if !p.YearsExperience.Valid {
		return 0
	}
	return int(p.YearsExperience.Int32)
}

// Rating returns the average rating, 0 meaning no reviews yet
func (p *Provider) Rating() float64 {
	if !p.AvgRating.Valid {
		return 0
	}
	return p.AvgRating.Float64
}

// Location returns the formatted location string
func (p *Provider) Location() string {
	parts := []string{}
	if p.City.Valid && p.City.String != "" {
		parts = append(parts, p.City.String)
	}
	if p.State.Valid && p.State.String != "" {
		parts = append(parts, p.State.String)
	}
	loc := strings.Join(parts, ", ")
	if p.ZipCode.Valid && p.ZipCode.String != "" {
		loc = strings.TrimSpace(loc + " " + p.ZipCode.String)
	}
	return loc
}

// IsPublic reports whether the profile is visible in the directory
func (p *Provider) IsPublic() bool {
	return p.IsActive && !p.IsDraft && p.ApprovalStatus == StatusApproved
}

// IsValidPricingTier reports whether the given tier is recognized
func IsValidPricingTier(tier string) bool {
	switch PricingTier(tier) {
	case PricingBudget, PricingModerate, PricingPremium, PricingLuxury:
		return true
	}
	return false
}
