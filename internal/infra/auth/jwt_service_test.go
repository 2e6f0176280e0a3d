package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"gatekeeper/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	key := newTestKeyPair(t)

	return newJWTServiceWithKeys(key, &key.PublicKey, ttl)
}

func TestJWTService_EncodeDecode_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	token, err := svc.Encode("user-id-123", nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-id-123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_Decode_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	// An explicit exp in extra claims overrides the default TTL.
	token, err := svc.Encode("user-id-123", map[string]any{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.Decode(token)
	require.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Decode_WrongKeyIsMalformed(t *testing.T) {
	issuer := newTestJWTService(t, 15*time.Minute)
	verifier := newTestJWTService(t, 15*time.Minute)

	token, err := issuer.Encode("user-id-123", nil)
	require.NoError(t, err)

	// A valid token signed by a different key must fail signature checks even
	// though its claims are well formed and unexpired.
	_, err = verifier.Decode(token)
	require.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_Decode_GarbageIsMalformed(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	_, err := svc.Decode("not.a.token")
	require.ErrorIs(t, err, service.ErrTokenMalformed)

	_, err = svc.Decode("")
	require.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_Decode_MissingSubject(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	token, err := svc.Encode("", nil)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	require.ErrorIs(t, err, service.ErrTokenMissingSubject)
}

func TestJWTService_Encode_ExtraClaimsDoNotClobberSubject(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	token, err := svc.Encode("user-id-123", map[string]any{"role": "admin"})
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-id-123", claims.Subject)
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	svc := newTestJWTService(t, 42*time.Minute)

	assert.Equal(t, 42*time.Minute, svc.AccessTokenTTL())
}
