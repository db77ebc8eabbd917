package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ouss-AGC/oama-plateform/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		BcryptCost:    bcrypt.MinCost,
		AdminPassword: "AGC202508530118",
	}
}

func TestCheckPassword(t *testing.T) {
	s, err := NewAuthService(testConfig())
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	if err := s.CheckPassword("AGC202508530118"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := s.CheckPassword("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPrecomputedHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("autre-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.AdminPasswordHash = string(hash)
	s, err := NewAuthService(cfg)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	if err := s.CheckPassword("autre-secret"); err != nil {
		t.Errorf("hashed password rejected: %v", err)
	}
	if err := s.CheckPassword(cfg.AdminPassword); err == nil {
		t.Error("plaintext fallback accepted despite a configured hash")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s, err := NewAuthService(testConfig())
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	token, err := s.GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != TokenTypeAdmin {
		t.Errorf("TokenType = %q, want admin", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("token issued without a jti")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s, err := NewAuthService(testConfig())
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	if _, err := s.ValidateToken("not-a-jwt"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewAuthService(testConfig())
	token, err := issuer.GenerateAdminToken()
	if err != nil {
		t.Fatal(err)
	}

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	verifier, _ := NewAuthService(otherCfg)

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}
