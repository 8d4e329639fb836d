package principal

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Roundtrip(t *testing.T) {
	r := NewJWTResolver("unit-test-secret")

	token, err := r.Issue(Principal{Login: "alice", Role: "admin"}, nil)
	require.NoError(t, err)

	p, err := r.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Login)
	assert.Equal(t, "admin", p.Role)
}

func TestResolve_RoleIsOptional(t *testing.T) {
	r := NewJWTResolver("unit-test-secret")

	token, err := r.Issue(Principal{Login: "bob"}, nil)
	require.NoError(t, err)

	p, err := r.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.Login)
	assert.Empty(t, p.Role)
}

func TestResolve_WrongSecret(t *testing.T) {
	issuer := NewJWTResolver("unit-test-secret")
	verifier := NewJWTResolver("a-different-secret")

	token, err := issuer.Issue(Principal{Login: "alice"}, nil)
	require.NoError(t, err)

	_, err = verifier.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_ExpiredToken(t *testing.T) {
	r := NewJWTResolver("unit-test-secret")

	token, err := r.Issue(Principal{Login: "alice"}, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = r.Resolve(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestResolve_MissingLoginClaim(t *testing.T) {
	r := NewJWTResolver("unit-test-secret")

	token, err := r.Issue(Principal{}, nil)
	require.NoError(t, err)

	_, err = r.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_Garbage(t *testing.T) {
	r := NewJWTResolver("unit-test-secret")

	_, err := r.Resolve("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
