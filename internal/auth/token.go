package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/novareservas/reservation-api/internal/httperr"
)

// Identity is the claim set carried by a bearer token.
type Identity struct {
	ClientID uint
	Email    string
}

// TokenService issues and verifies HMAC-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   float64(id.ClientID),
		"email": id.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, expiry and structure. Every failure mode
// collapses into ErrInvalidToken so callers cannot tell them apart.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, httperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, httperr.ErrInvalidToken
	}

	sub, okID := claims["sub"].(float64)
	email, okEmail := claims["email"].(string)
	if !okID || !okEmail {
		return Identity{}, httperr.ErrInvalidToken
	}

	return Identity{ClientID: uint(sub), Email: email}, nil
}
