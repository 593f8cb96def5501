package matching

import (
	"github.com/findapro/findapro-api/internal/domain/provider"
)

// QuizRequest carries the five quiz answers
type QuizRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Urgency  string `json:"urgency" validate:"required,urgency"`
	Budget   string `json:"budget" validate:"required,budget_band"`
	Priority string `json:"priority" validate:"required,match_priority"`
}

// MatchResponse is one ranked result with the provider card attached
type MatchResponse struct {
	Provider        provider.Response `json:"provider"`
	MatchPercentage int               `json:"match_percentage"`
	MatchReasons    []string          `json:"match_reasons"`
}

// QuizResponse wraps the ranked matches with the echoed answers
type QuizResponse struct {
	Matches  []MatchResponse `json:"matches"`
	Category string          `json:"category"`
	City     string          `json:"city,omitempty"`
	Urgency  string          `json:"urgency"`
	Budget   string          `json:"budget"`
	Priority string          `json:"priority"`
}
