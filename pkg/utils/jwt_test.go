package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", time.Minute, time.Hour)

	token, err := GenerateAccessToken(42, "owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "owner" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccessTokenRejectsOtherSecret(t *testing.T) {
	InitJWT("secret-a", time.Minute, time.Hour)
	token, err := GenerateAccessToken(1, "manager")
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("secret-b", time.Minute, time.Hour)
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	InitJWT("test-secret", -time.Minute, time.Hour)
	token, err := GenerateAccessToken(1, "owner")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestAccessTokenRejectsNoneAlgorithm(t *testing.T) {
	InitJWT("test-secret", time.Minute, time.Hour)
	claims := Claims{UserID: 1, Role: "owner", RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateAccessToken(unsigned); err == nil {
		t.Fatal("unsigned token must not validate")
	}
}

func TestHashRefreshTokenStable(t *testing.T) {
	token := GenerateRefreshToken()
	if HashRefreshToken(token) != HashRefreshToken(token) {
		t.Fatal("hash must be deterministic")
	}
	if HashRefreshToken(token) == HashRefreshToken(GenerateRefreshToken()) {
		t.Fatal("different tokens should not share a hash")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"BEARER abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("BearerToken(%q) = %q, %v, want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}
