package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the access token carries an exp claim in the
// past. The claim is read without signature verification — the client has no
// key and only uses this to skip a request that is guaranteed to 401.
// Tokens without exp, or tokens that do not parse as JWTs, are not treated
// as expired; the server stays the authority.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
