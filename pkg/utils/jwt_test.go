package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := CreateToken(userID, "editor", true)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "editor" {
		t.Errorf("role = %s, want editor", claims.Role)
	}
	if !claims.Staff {
		t.Error("staff flag lost")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-jwt"); err == nil {
		t.Error("garbage token validated")
	}
}
