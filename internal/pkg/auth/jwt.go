package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// IdentityKind distinguishes company sessions from student sessions.
type IdentityKind string

const (
	KindCompany IdentityKind = "COMPANY"
	KindStudent IdentityKind = "STUDENT"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	SessionExp  time.Duration
	TokenIssuer string
}

// JWTService issues and validates session tokens. Tokens are the sole bearer
// of session identity; there is no server-side session store, so a token stays
// valid until its natural expiry.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// SessionClaims defines session token content
type SessionClaims struct {
	RecordID int64        `json:"recordId"`
	Email    string       `json:"email"`
	Kind     IdentityKind `json:"kind"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token binding the record id
// and email of a logged-in identity.
func (s *JWTService) GenerateSessionToken(kind IdentityKind, recordID int64, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.config.SessionExp)

	claims := &SessionClaims{
		RecordID: recordID,
		Email:    email,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", recordID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateSessionToken verifies signature and expiry and returns the claims.
// No storage round-trip happens here.
func (s *JWTService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.RecordID <= 0 || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SessionExpiry returns the configured session lifetime.
func (s *JWTService) SessionExpiry() time.Duration {
	return s.config.SessionExp
}
