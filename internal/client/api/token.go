package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend issues JWT access tokens with standard "sub" (the user's
// email) and "exp" claims. The helpers below read claims WITHOUT verifying
// the signature: the client has no key material and authorization stays the
// server's job. Use them for display and bookkeeping only.

// TokenExpiry reports when the bearer token expires.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parsing token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoClaim
	}
	return exp.Time, nil
}

// TokenSubject returns the token's "sub" claim (the account email).
func TokenSubject(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("reading sub claim: %w", err)
	}
	if sub == "" {
		return "", ErrNoClaim
	}
	return sub, nil
}
