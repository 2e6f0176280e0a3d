package service

import (
	"errors"
	"time"
)

// Token verification failures are discriminated so the delivery layer can map
// "expired" and "invalid" to the right HTTP statuses.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	// Expiry is exact against wall-clock time; no leeway window is applied.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed is returned when the token cannot be parsed or its
	// signature does not verify against the service's public key.
	ErrTokenMalformed = errors.New("token malformed or signature invalid")

	// ErrTokenMissingSubject is returned when the claims parse but carry no sub.
	ErrTokenMissingSubject = errors.New("token has no subject claim")
)

// Claims is the verified payload of a decoded token. Subject is the only
// claim downstream code may trust.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed tokens.
// Implementations are stateless over an immutable key pair: the private key
// signs, the public key verifies, and concurrent Encode/Decode calls are safe
// without coordination.
type TokenService interface {
	// Encode builds claims {sub: subject, exp: now + TTL} merged with extra,
	// signs them with the private key and returns the compact representation.
	// A caller-supplied "exp" in extra takes precedence over the default TTL.
	Encode(subject string, extra map[string]any) (string, error)

	// Decode parses the token and verifies its signature using the public key
	// only. Failures are ErrTokenExpired, ErrTokenMalformed or
	// ErrTokenMissingSubject.
	Decode(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
