// Package auth reads caller identity from forwarded bearer tokens. Signatures
// are checked by the profile backend; this service never holds the secret.
package auth

import (
	"github.com/golang-jwt/jwt"
)

// Subject returns the "sub" claim of a JWT without verifying it, or "" when
// the token is empty, opaque or has no string subject.
func Subject(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, _ := claims["sub"].(string)
	return sub
}
