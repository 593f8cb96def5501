package matching_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/findapro/findapro-api/internal/domain/matching"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate matching.Candidate
		query     matching.Query
		want      float64
	}{
		{
			name:      "bare candidate gets the base score",
			candidate: matching.Candidate{},
			query:     matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PriorityPrice},
			want:      5.0,
		},
		{
			name: "verified quality pick with strong rating",
			candidate: matching.Candidate{
				AvgRating:   4.8,
				ReviewCount: 12,
				IsVerified:  true,
			},
			query: matching.Query{Urgency: matching.UrgencyThisWeek, Budget: matching.BudgetMid, Priority: matching.PriorityQuality},
			// 5.0 + (4.8-3)*0.5 + 1.0 + 0.5 + 1.0 + 0.5
			want: 8.9,
		},
		{
			name: "rating below three subtracts",
			candidate: matching.Candidate{
				AvgRating: 2.0,
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed},
			want:  4.5,
		},
		{
			name: "five reviews earn the half bonus",
			candidate: matching.Candidate{
				ReviewCount: 5,
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed},
			want:  5.5,
		},
		{
			name: "speed priority rewards five years of experience",
			candidate: matching.Candidate{
				YearsExperience: 5,
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed},
			want:  6.0,
		},
		{
			name: "price priority rewards the cheap tier more than moderate",
			candidate: matching.Candidate{
				PricingTier: "$",
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetLow, Priority: matching.PriorityPrice},
			want:  6.0,
		},
		{
			name: "moderate tier earns half under price priority",
			candidate: matching.Candidate{
				PricingTier: "$$",
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetMid, Priority: matching.PriorityPrice},
			want:  5.5,
		},
		{
			name: "reviews priority pays 1.5 at fifteen reviews",
			candidate: matching.Candidate{
				ReviewCount: 15,
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PriorityReviews},
			// 5.0 + 1.0 (volume) + 1.5 (priority)
			want: 7.5,
		},
		{
			name: "emergency urgency pays only for verified providers",
			candidate: matching.Candidate{
				IsVerified: true,
			},
			query: matching.Query{Urgency: matching.UrgencyEmergency, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed},
			// 5.0 + 0.5 (verified) + 0.5 (emergency)
			want: 6.0,
		},
		{
			name: "emergency urgency ignores unverified providers",
			candidate: matching.Candidate{
				AcceptsEmergency: true,
			},
			query: matching.Query{Urgency: matching.UrgencyEmergency, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed},
			want:  5.0,
		},
		{
			name: "unknown priority adds no priority bonus",
			candidate: matching.Candidate{
				AvgRating:  5.0,
				IsFeatured: true,
			},
			query: matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: "cheapest"},
			want:  6.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.Score(tt.candidate, tt.query)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreRatingMonotonic(t *testing.T) {
	q := matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PrioritySpeed}
	prev := matching.Score(matching.Candidate{AvgRating: 1.0}, q)
	for rating := 1.5; rating <= 5.0; rating += 0.5 {
		got := matching.Score(matching.Candidate{AvgRating: rating}, q)
		if got <= prev {
			t.Fatalf("score at rating %.1f = %v, not greater than %v", rating, got, prev)
		}
		prev = got
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{5.0, 50},
		{8.9, 89},
		{9.94, 99},
		{9.96, 99},  // rounds to 100, capped
		{12.0, 99},  // far past the cap
		{4.55, 46},  // round half away from zero
		{-1.0, 0},
	}
	for _, tt := range tests {
		if got := matching.Percentage(tt.score); got != tt.want {
			t.Errorf("Percentage(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestFilterByBudget(t *testing.T) {
	candidates := []matching.Candidate{
		{ID: "a", PricingTier: "$"},
		{ID: "b", PricingTier: "$$"},
		{ID: "c", PricingTier: "$$$"},
		{ID: "d", PricingTier: "$$$$"},
	}

	tests := []struct {
		budget string
		want   []string
	}{
		{matching.BudgetLow, []string{"a"}},
		{matching.BudgetMid, []string{"a", "b"}},
		{matching.BudgetPremium, []string{"b", "c"}},
		{matching.BudgetAny, []string{"a", "b", "c"}}, // luxury tier needs an explicit premium pick
		{"unknown", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			got := matching.FilterByBudget(candidates, tt.budget)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("FilterByBudget(%q) = %v, want %v", tt.budget, ids, tt.want)
			}
		})
	}
}

func TestFilterByCity(t *testing.T) {
	candidates := []matching.Candidate{
		{ID: "a", City: "Austin"},
		{ID: "b", City: "South Austin"},
		{ID: "c", City: "Dallas"},
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got := matching.FilterByCity(candidates, "austin")
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("FilterByCity(austin) = %v", got)
		}
	})

	t.Run("empty city keeps everyone", func(t *testing.T) {
		if got := matching.FilterByCity(candidates, "  "); len(got) != 3 {
			t.Errorf("FilterByCity(blank) kept %d, want 3", len(got))
		}
	})

	t.Run("no matches falls back to the full set", func(t *testing.T) {
		if got := matching.FilterByCity(candidates, "Houston"); len(got) != 3 {
			t.Errorf("FilterByCity(Houston) kept %d, want full set of 3", len(got))
		}
	})
}

func TestRank(t *testing.T) {
	q := matching.Query{Urgency: matching.UrgencyFlexible, Budget: matching.BudgetAny, Priority: matching.PriorityQuality}

	t.Run("orders by score descending and caps at five", func(t *testing.T) {
		candidates := []matching.Candidate{
			{ID: "weak", PricingTier: "$"},
			{ID: "strong", PricingTier: "$", AvgRating: 4.9, ReviewCount: 20, IsVerified: true},
			{ID: "mid", PricingTier: "$", AvgRating: 4.0, ReviewCount: 6},
			{ID: "e1", PricingTier: "$"},
			{ID: "e2", PricingTier: "$"},
			{ID: "e3", PricingTier: "$"},
			{ID: "e4", PricingTier: "$"},
		}
		got := matching.Rank(candidates, q)
		if len(got) != 5 {
			t.Fatalf("Rank returned %d matches, want 5", len(got))
		}
		if got[0].Candidate.ID != "strong" || got[1].Candidate.ID != "mid" {
			t.Errorf("top two = %s, %s; want strong, mid", got[0].Candidate.ID, got[1].Candidate.ID)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("matches out of order at %d: %v > %v", i, got[i].Score, got[i-1].Score)
			}
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		candidates := []matching.Candidate{
			{ID: "first", PricingTier: "$"},
			{ID: "second", PricingTier: "$"},
			{ID: "third", PricingTier: "$"},
		}
		got := matching.Rank(candidates, q)
		for i, want := range []string{"first", "second", "third"} {
			if got[i].Candidate.ID != want {
				t.Errorf("position %d = %s, want %s", i, got[i].Candidate.ID, want)
			}
		}
	})

	t.Run("percentage never exceeds 99", func(t *testing.T) {
		candidates := []matching.Candidate{
			{ID: "max", PricingTier: "$", AvgRating: 5.0, ReviewCount: 50, YearsExperience: 20, IsVerified: true, IsFeatured: true},
		}
		got := matching.Rank(candidates, matching.Query{
			Urgency: matching.UrgencyEmergency, Budget: matching.BudgetLow, Priority: matching.PriorityQuality,
		})
		if len(got) != 1 {
			t.Fatalf("Rank returned %d matches, want 1", len(got))
		}
		if got[0].Percentage > 99 {
			t.Errorf("percentage = %d, want <= 99", got[0].Percentage)
		}
	})
}

func TestReasons(t *testing.T) {
	t.Run("full candidate caps at four reasons in fixed order", func(t *testing.T) {
		c := matching.Candidate{
			AvgRating:       4.8,
			ReviewCount:     12,
			YearsExperience: 12,
			PricingTier:     "$",
			IsVerified:      true,
			IsFeatured:      true,
		}
		q := matching.Query{Budget: matching.BudgetLow, Priority: matching.PriorityQuality}
		want := []string{
			"Excellent rating (4.8/5)",
			"12 verified reviews",
			"Verified professional",
			"12+ years experience",
		}
		if got := matching.Reasons(c, q); !reflect.DeepEqual(got, want) {
			t.Errorf("Reasons() = %v, want %v", got, want)
		}
	})

	t.Run("lower bands use softer wording", func(t *testing.T) {
		c := matching.Candidate{
			AvgRating:       4.2,
			ReviewCount:     6,
			YearsExperience: 7,
		}
		q := matching.Query{Budget: matching.BudgetMid, Priority: matching.PrioritySpeed}
		want := []string{
			"Great rating (4.2/5)",
			"6 reviews",
			"7 years experience",
			"Experienced & efficient",
		}
		if got := matching.Reasons(c, q); !reflect.DeepEqual(got, want) {
			t.Errorf("Reasons() = %v, want %v", got, want)
		}
	})

	t.Run("premium pick names the tier", func(t *testing.T) {
		c := matching.Candidate{PricingTier: "$$$"}
		q := matching.Query{Budget: matching.BudgetPremium, Priority: matching.PriorityPrice}
		want := []string{"Premium service tier"}
		if got := matching.Reasons(c, q); !reflect.DeepEqual(got, want) {
			t.Errorf("Reasons() = %v, want %v", got, want)
		}
	})

	t.Run("empty candidate has no reasons", func(t *testing.T) {
		if got := matching.Reasons(matching.Candidate{}, matching.Query{}); len(got) != 0 {
			t.Errorf("Reasons() = %v, want empty", got)
		}
	})
}
