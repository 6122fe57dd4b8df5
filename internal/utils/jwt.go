package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but past its expiry. Callers should prompt for a fresh login.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers malformed, tampered or wrongly-signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the authenticated principal inside a signed token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SetJWTSecret sets the HMAC signing key. Must be called before issuing or
// parsing tokens.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues a signed HS256 token carrying the user's identity and
// role, valid for expireHours hours.
func GenerateToken(userID uint, name, role string, expireHours int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "skillmatch",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies a token and returns its claims. An expired token is
// reported as ErrTokenExpired, anything else wrong as ErrTokenInvalid.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
