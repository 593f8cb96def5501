package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/pkg/jwt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "provider")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "provider" {
		t.Errorf("role = %q, want provider", claims.Role)
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	svc := jwt.NewService("secret-a", 15*time.Minute, time.Hour)
	other := jwt.NewService("secret-b", 15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc := jwt.NewService("test-secret", 15*time.Minute, time.Hour)

	refresh, _, _, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := svc.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token passed access validation")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	token, jti, expiresAt, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if jti == "" {
		t.Error("empty jti")
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expiry %v not in the future", expiresAt)
	}

	claims, err := svc.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
}

func TestHashRefreshTokenIsStable(t *testing.T) {
	if jwt.HashRefreshToken("abc") != jwt.HashRefreshToken("abc") {
		t.Error("same token hashed differently")
	}
	if jwt.HashRefreshToken("abc") == jwt.HashRefreshToken("abd") {
		t.Error("different tokens produced the same hash")
	}
}
