package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "secret"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == password {
		t.Errorf("Expected hash to differ from plaintext")
	}

	if !CheckPassword(password, hash) {
		t.Errorf("Expected password check to pass")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Errorf("Expected password check to fail")
	}
}

func TestJWT(t *testing.T) {
	secret := "supersecret"
	userID := "123"

	token, err := GenerateToken(userID, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected UserID %s, got %s", userID, claims.UserID)
	}

	_, err = ValidateToken(token, "wrongsecret")
	if err == nil {
		t.Errorf("Expected error with wrong secret")
	}
}

func TestJWTIdentityNotInterchangeable(t *testing.T) {
	secret := "supersecret"

	tokenA, err := GenerateToken("1", secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	tokenB, err := GenerateToken("2", secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claimsA, err := ValidateToken(tokenA, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	claimsB, err := ValidateToken(tokenB, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claimsA.UserID == claimsB.UserID {
		t.Errorf("Expected distinct identities, both resolved to %s", claimsA.UserID)
	}
}

func TestJWTTamperedSignatureFails(t *testing.T) {
	secret := "supersecret"

	token, err := GenerateToken("123", secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := ValidateToken(tampered, secret); err == nil {
		t.Errorf("Expected tampered token to fail validation")
	}
}
