package utils

import (
	"strings"
	"testing"
)

func TestJwtRoundTrip(t *testing.T) {
	token, err := JwtGenerate(42, "accountant")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}
	parsed, err := JwtValidate(token)
	if err != nil {
		t.Fatalf("JwtValidate: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("expected valid token")
	}
	claims, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims.ID != 42 || claims.Role != "accountant" {
		t.Fatalf("unexpected claims: id=%d role=%q", claims.ID, claims.Role)
	}
}

func TestJwtValidateRejectsBadTokens(t *testing.T) {
	if _, err := JwtValidate("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}

	// Tampered payload must fail signature verification.
	token, err := JwtGenerate(1, "worker")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + ".eyJpZCI6OTk5fQ." + parts[2]
	if _, err := JwtValidate(tampered); err == nil {
		t.Fatalf("expected error for tampered token")
	}
}
