// services/auth_token_service.go - Access token minting and verification
package services

import (
	"os"
	"strconv"
	"time"
	"tododuk/models"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTokenTTL = 60 * 60 // seconds

// AuthTokenService mints and verifies the short-lived access tokens that
// ride alongside the long-lived API key. A valid token is authoritative:
// resolving it requires no database round-trip.
type AuthTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthTokenService() *AuthTokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "tododuk-secret-change-in-production"
	}

	ttl := defaultAccessTokenTTL
	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return &AuthTokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttl) * time.Second,
	}
}

// GenAccessToken signs a token carrying the user's id and email.
func (s *AuthTokenService) GenAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Payload verifies signature and expiry and returns the embedded identity.
// ok is false for any malformed, forged or expired token.
func (s *AuthTokenService) Payload(tokenString string) (userID uint, email string, ok bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, isHMAC := token.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return 0, "", false
	}

	id, isFloat := claims["id"].(float64)
	if !isFloat || id <= 0 {
		return 0, "", false
	}

	email, _ = claims["email"].(string)
	return uint(id), email, true
}
