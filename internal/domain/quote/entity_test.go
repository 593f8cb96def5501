package quote_test

import (
	"testing"

	"github.com/findapro/findapro-api/internal/domain/quote"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to quote.Status }{
		{quote.StatusPending, quote.StatusViewed},
		{quote.StatusPending, quote.StatusQuoted},
		{quote.StatusPending, quote.StatusDeclined},
		{quote.StatusPending, quote.StatusExpired},
		{quote.StatusViewed, quote.StatusQuoted},
		{quote.StatusViewed, quote.StatusDeclined},
		{quote.StatusViewed, quote.StatusExpired},
		{quote.StatusQuoted, quote.StatusAccepted},
		{quote.StatusQuoted, quote.StatusDeclined},
		{quote.StatusQuoted, quote.StatusExpired},
	}
	for _, tt := range allowed {
		if !quote.CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to quote.Status }{
		{quote.StatusPending, quote.StatusAccepted}, // must be quoted first
		{quote.StatusViewed, quote.StatusAccepted},
		{quote.StatusViewed, quote.StatusPending},
		{quote.StatusQuoted, quote.StatusViewed},
		{quote.StatusAccepted, quote.StatusDeclined},
		{quote.StatusDeclined, quote.StatusQuoted},
		{quote.StatusExpired, quote.StatusViewed},
		{quote.StatusPending, quote.StatusPending},
	}
	for _, tt := range denied {
		if quote.CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tt.from, tt.to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	terminal := []quote.Status{quote.StatusAccepted, quote.StatusDeclined, quote.StatusExpired}
	all := []quote.Status{
		quote.StatusPending, quote.StatusViewed, quote.StatusQuoted,
		quote.StatusAccepted, quote.StatusDeclined, quote.StatusExpired,
	}
	for _, from := range terminal {
		for _, to := range all {
			if quote.CanTransition(from, to) {
				t.Errorf("terminal state %s allows transition to %s", from, to)
			}
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "viewed", "quoted", "accepted", "declined", "expired"} {
		if !quote.IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "open", "PENDING", "cancelled"} {
		if quote.IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true", s)
		}
	}
}
