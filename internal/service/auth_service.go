package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ouss-AGC/oama-plateform/internal/config"
)

// ErrInvalidCredentials: the admin password does not match.
var ErrInvalidCredentials = errors.New("mot de passe incorrect")

// TokenType tags the audience a token was issued for. Only admins hold
// tokens today; students join sessions by PIN, not by login.
type TokenType string

const TokenTypeAdmin TokenType = "admin"

// Claims extends JWT standard claims with the token audience.
type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"token_type"`
}

// AuthService guards the admin surface with a single shared password and
// short-lived JWTs.
type AuthService struct {
	cfg  *config.Config
	hash []byte
}

// NewAuthService prepares the admin credential. A precomputed bcrypt hash
// from the environment wins over the plaintext fallback, which is hashed
// once at startup so every login check runs against bcrypt either way.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	s := &AuthService{cfg: cfg}
	if cfg.AdminPasswordHash != "" {
		s.hash = []byte(cfg.AdminPasswordHash)
		return s, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	s.hash = hash
	return s, nil
}

// CheckPassword compares a login attempt against the admin credential.
func (s *AuthService) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateAdminToken issues a signed admin JWT.
func (s *AuthService) GenerateAdminToken() (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: TokenTypeAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
