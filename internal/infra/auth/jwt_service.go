// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// asymmetrically signed JWTs. The key pair is loaded once at construction and
// is immutable for the process lifetime; the private key never leaves this
// struct, only signed tokens do. Encode and Decode share no mutable state, so
// concurrent calls need no coordination.
type jwtService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	method     jwt.SigningMethod
	accessTTL  time.Duration
}

// NewJWTService is the constructor for jwtService. It reads the PEM-encoded
// key pair from the configured paths and validates the configured algorithm.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.PrivateKeyPath == "" || cfg.Auth.PublicKeyPath == "" {
		return nil, errors.New("jwt key paths must be provided")
	}

	method := jwt.GetSigningMethod(cfg.Auth.Algorithm)
	if _, ok := method.(*jwt.SigningMethodRSA); !ok {
		return nil, errors.Errorf("unsupported signing algorithm: %s", cfg.Auth.Algorithm)
	}

	privatePEM, err := os.ReadFile(cfg.Auth.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "read private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}

	publicPEM, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "read public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}

	return &jwtService{
		privateKey: privateKey,
		publicKey:  publicKey,
		method:     method,
		accessTTL:  time.Duration(cfg.Auth.AccessTokenExpireMinutes) * time.Minute,
	}, nil
}

// newJWTServiceWithKeys builds the service from in-memory keys. Used by tests
// that need mismatched or ephemeral key pairs without touching the filesystem.
func newJWTServiceWithKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, accessTTL time.Duration) *jwtService {
	return &jwtService{
		privateKey: privateKey,
		publicKey:  publicKey,
		method:     jwt.SigningMethodRS256,
		accessTTL:  accessTTL,
	}
}

// Encode signs claims {sub, exp: now + TTL} merged with extra. A caller-supplied
// "exp" wins over the default so explicit expiries can be issued.
func (s *jwtService) Encode(subject string, extra map[string]any) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.accessTTL).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Decode parses and verifies a token using the public key only.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		// A well-signed token past its exp is "expired"; everything else
		// (garbage structure, wrong key, wrong algorithm) is "malformed".
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenMalformed
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, service.ErrTokenMissingSubject
	}

	claims := &service.Claims{Subject: subject}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// AccessTokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
