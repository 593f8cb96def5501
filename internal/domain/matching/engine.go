package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Urgency answers from the quiz
const (
	UrgencyEmergency = "emergency"
	UrgencyThisWeek  = "this_week"
	UrgencyThisMonth = "this_month"
	UrgencyFlexible  = "flexible"
)

// Budget bands from the quiz
const (
	BudgetLow     = "budget"
	BudgetMid     = "mid"
	BudgetPremium = "premium"
	BudgetAny     = "any"
)

// Priority answers from the quiz
const (
	PriorityQuality = "quality"
	PrioritySpeed   = "speed"
	PriorityPrice   = "price"
	PriorityReviews = "reviews"
)

const (
	baseScore  = 5.0
	maxResults = 5
	maxReasons = 4
)

// budgetTiers maps each budget band to the pricing tiers it accepts.
// The top tier is intentionally absent from "any": luxury providers only
// surface for customers who picked premium.
var budgetTiers = map[string][]string{
	BudgetLow:     {"$"},
	BudgetMid:     {"$", "$$"},
	BudgetPremium: {"$$", "$$$"},
	BudgetAny:     {"$", "$$", "$$$"},
}

// Candidate is the scoring input: a flattened view of one provider.
// The engine knows nothing about storage or HTTP.
type Candidate struct {
	ID              string
	Name            string
	City            string
	PricingTier     string
	AvgRating       float64
	ReviewCount     int
	YearsExperience int
	IsVerified      bool
	IsFeatured      bool
	IsAvailableNow  bool
	AcceptsEmergency bool
}

// Query is the full set of quiz answers
type Query struct {
	CategorySlug string
	City         string
	Urgency      string
	Budget       string
	Priority     string
}

// Match is one ranked result
type Match struct {
	Candidate  Candidate
	Score      float64
	Percentage int
	Reasons    []string
}

// Rank filters, scores and orders candidates, returning at most five
// matches in descending score order. Ties keep their input order.
func Rank(candidates []Candidate, q Query) []Match {
	filtered := FilterByBudget(candidates, q.Budget)
	filtered = FilterByCity(filtered, q.City)

	matches := make([]Match, 0, len(filtered))
	for _, c := range filtered {
		score := Score(c, q)
		matches = append(matches, Match{
			Candidate:  c,
			Score:      score,
			Percentage: Percentage(score),
			Reasons:    Reasons(c, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// FilterByBudget keeps candidates whose pricing tier falls inside the
// budget band. An unknown band applies no filter.
func FilterByBudget(candidates []Candidate, budget string) []Candidate {
	tiers, ok := budgetTiers[budget]
	if !ok {
		return candidates
	}
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		for _, t := range tiers {
			if c.PricingTier == t {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// FilterByCity keeps candidates whose city contains the query city,
// case-insensitively. The filter is advisory: when it would eliminate
// everyone, the unfiltered set is returned instead.
func FilterByCity(candidates []Candidate, city string) []Candidate {
	city = strings.TrimSpace(city)
	if city == "" {
		return candidates
	}
	needle := strings.ToLower(city)
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.City), needle) {
			result = append(result, c)
		}
	}
	if len(result) == 0 {
		return candidates
	}
	return result
}

// Score computes the raw match score for one candidate. The base is 5.0
// with additive bonuses; typical scores land between 4 and 10.
func Score(c Candidate, q Query) float64 {
	score := baseScore

	// Rating bonus, 5-star = +1, 4-star = +0.5. A rating of zero means
	// no reviews and earns nothing.
	if c.AvgRating > 0 {
		score += (c.AvgRating - 3) * 0.5
	}

	// Review volume
	if c.ReviewCount >= 10 {
		score += 1
	} else if c.ReviewCount >= 5 {
		score += 0.5
	}

	if c.IsVerified {
		score += 0.5
	}
	if c.IsFeatured {
		score += 0.3
	}

	switch q.Priority {
	case PriorityQuality:
		if c.AvgRating >= 4.5 {
			score += 1
		}
		if c.IsVerified {
			score += 0.5
		}
	case PrioritySpeed:
		if c.YearsExperience >= 5 {
			score += 1
		}
	case PriorityPrice:
		if c.PricingTier == "$" {
			score += 1
		} else if c.PricingTier == "$$" {
			score += 0.5
		}
	case PriorityReviews:
		if c.ReviewCount >= 15 {
			score += 1.5
		} else if c.ReviewCount >= 8 {
			score += 1
		}
	}

	// Emergencies favor verified providers
	if q.Urgency == UrgencyEmergency && c.IsVerified {
		score += 0.5
	}

	return score
}

// Percentage converts a raw score to a display percentage, capped at 99
// so no match ever claims certainty.
func Percentage(score float64) int {
	p := int(math.Round(score * 10))
	if p > 99 {
		p = 99
	}
	if p < 0 {
		p = 0
	}
	return p
}

// Reasons explains a match in customer-facing terms. The order is fixed
// and at most four reasons are returned.
func Reasons(c Candidate, q Query) []string {
	reasons := []string{}

	if c.AvgRating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("Excellent rating (%.1f/5)", c.AvgRating))
	} else if c.AvgRating >= 4.0 {
		reasons = append(reasons, fmt.Sprintf("Great rating (%.1f/5)", c.AvgRating))
	}

	if c.ReviewCount >= 10 {
		reasons = append(reasons, fmt.Sprintf("%d verified reviews", c.ReviewCount))
	} else if c.ReviewCount >= 5 {
		reasons = append(reasons, fmt.Sprintf("%d reviews", c.ReviewCount))
	}

	if c.IsVerified {
		reasons = append(reasons, "Verified professional")
	}

	if c.YearsExperience >= 10 {
		reasons = append(reasons, fmt.Sprintf("%d+ years experience", c.YearsExperience))
	} else if c.YearsExperience >= 5 {
		reasons = append(reasons, fmt.Sprintf("%d years experience", c.YearsExperience))
	}

	if q.Budget == BudgetLow && c.PricingTier == "$" {
		reasons = append(reasons, "Budget-friendly pricing")
	} else if q.Budget == BudgetPremium && c.PricingTier == "$$$" {
		reasons = append(reasons, "Premium service tier")
	}

	if q.Priority == PriorityQuality && c.AvgRating >= 4.5 {
		reasons = append(reasons, "Top quality in category")
	} else if q.Priority == PrioritySpeed && c.YearsExperience >= 5 {
		reasons = append(reasons, "Experienced & efficient")
	} else if q.Priority == PriorityReviews && c.ReviewCount >= 10 {
		reasons = append(reasons, "Highly reviewed")
	}

	if c.IsFeatured {
		reasons = append(reasons, "Featured provider")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
