package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiryClaim = errors.New("token has no exp claim")

// TokenExpiry reads the exp claim of a JWT without verifying its
// signature. The planning API owns the signing secret; this side only
// needs to know when the access token runs out.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}
	return exp.Time, nil
}

// TokenExpired reports whether the token carries an exp claim in the
// past. Unparseable tokens count as expired.
func TokenExpired(tokenString string) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return time.Now().After(exp)
}
