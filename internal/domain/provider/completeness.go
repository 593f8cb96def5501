package provider

import (
	"math"
	"strings"
)

// SubmitThreshold is the minimum completion percentage required to publish
const SubmitThreshold = 50.0

// CompletionSlot defines one tracked profile field
type CompletionSlot struct {
	Field   string
	Section string
	Tip     string
}

// CompletionSlots lists every field counted toward profile completion.
// Each slot counts equally; the percentage is filled/total.
var CompletionSlots = []CompletionSlot{
	// Basic info
	{"name", "basic_info", "Add your business name"},
	{"tagline", "basic_info", "Add a short tagline customers see first"},
	{"description", "basic_info", "Describe the services you offer"},
	{"category", "basic_info", "Pick your service category"},
	{"skills", "basic_info", "List your skills (comma-separated)"},

	// Contact & location
	{"email", "contact", "Add a contact email"},
	{"phone", "contact", "Add a phone number"},
	{"city", "contact", "Add your city"},
	{"state", "contact", "Add your state"},
	{"zip_code", "contact", "Add your ZIP code"},

	// Business details
	{"pricing_tier", "business", "Choose a pricing tier"},
	{"years_experience", "business", "Add your years of experience"},

	// Media
	{"profile_image", "media", "Upload a profile photo"},
	{"logo", "media", "Upload your business logo"},

	// Emergency settings
	{"accepts_emergency", "emergency", "Enable emergency requests to appear in Emergency Mode"},
	{"emergency_rate_info", "emergency", "Describe your emergency rates"},

	// Related records
	{"business_hours", "availability", "Set your business hours"},
	{"service_areas", "availability", "Add at least one service area"},
}

// CompletenessResult is the derived completion state of a profile
type CompletenessResult struct {
	Percentage    float64  `json:"percentage"`
	Filled        int      `json:"filled"`
	Total         int      `json:"total"`
	CanSubmit     bool     `json:"can_submit"`
	MissingFields []string `json:"missing_fields"`
	Tips          []string `json:"tips"`
}

// Completeness recomputes the completion percentage from the current record.
// It is a pure function of the profile plus the existence of its hours and
// service-area sub-records; nothing is cached.
func Completeness(p *Provider, hasHours bool, serviceAreaCount int) *CompletenessResult {
	filled := 0
	missing := []string{}
	tips := []string{}

	for _, slot := range CompletionSlots {
		ok := false
		switch slot.Field {
		case "name":
			ok = textFilled(p.Name.Valid, p.Name.String)
		case "tagline":
			ok = textFilled(p.Tagline.Valid, p.Tagline.String)
		case "description":
			ok = textFilled(p.Description.Valid, p.Description.String)
		case "category":
			ok = p.CategoryID.Valid
		case "skills":
			ok = textFilled(p.Skills.Valid, p.Skills.String)
		case "email":
			ok = textFilled(p.Email.Valid, p.Email.String)
		case "phone":
			ok = textFilled(p.Phone.Valid, p.Phone.String)
		case "city":
			ok = textFilled(p.City.Valid, p.City.String)
		case "state":
			ok = textFilled(p.State.Valid, p.State.String)
		case "zip_code":
			ok = textFilled(p.ZipCode.Valid, p.ZipCode.String)
		case "pricing_tier":
			ok = textFilled(p.PricingTier.Valid, p.PricingTier.String)
		case "years_experience":
			// zero years counts as not provided
			ok = p.YearsExperience.Valid && p.YearsExperience.Int32 > 0
		case "profile_image":
			ok = textFilled(p.ImageURL.Valid, p.ImageURL.String)
		case "logo":
			ok = textFilled(p.LogoURL.Valid, p.LogoURL.String)
		case "accepts_emergency":
			// false counts as not provided, same as an unset text field
			ok = p.AcceptsEmergency
		case "emergency_rate_info":
			ok = textFilled(p.EmergencyRateInfo.Valid, p.EmergencyRateInfo.String)
		case "business_hours":
			ok = hasHours
		case "service_areas":
			ok = serviceAreaCount > 0
		}

		if ok {
			filled++
		} else {
			missing = append(missing, slot.Field)
			tips = append(tips, slot.Tip)
		}
	}

	total := len(CompletionSlots)
	percentage := 0.0
	if total > 0 {
		percentage = round1(float64(filled) / float64(total) * 100)
	}

	// Limit tips to the top 3
	if len(tips) > 3 {
		tips = tips[:3]
	}

	return &CompletenessResult{
		Percentage:    percentage,
		Filled:        filled,
		Total:         total,
		CanSubmit:     percentage >= SubmitThreshold,
		MissingFields: missing,
		Tips:          tips,
	}
}

// CanSubmit reports whether the profile meets the publication threshold
func CanSubmit(p *Provider, hasHours bool, serviceAreaCount int) bool {
	return Completeness(p, hasHours, serviceAreaCount).Percentage >= SubmitThreshold
}

func textFilled(valid bool, s string) bool {
	return valid && strings.TrimSpace(s) != ""
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
