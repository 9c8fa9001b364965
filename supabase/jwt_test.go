package supabase

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// signUserToken signs a token shaped like the ones the identity provider issues.
func signUserToken(userID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"aud":  "authenticated",
		"role": "authenticated",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	if userID != "" {
		claims["sub"] = userID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
