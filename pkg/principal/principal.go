package principal

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Principal is the authenticated identity resolved from a bearer credential.
type Principal struct {
	Login string
	Role  string
}

// Resolver converts a bearer credential into a principal.
type Resolver interface {
	Resolve(token string) (Principal, error)
}

// Resolution failures reported to the caller as 401.
var (
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// JWTResolver validates HS256 tokens issued by the auth service. The token
// must carry a userlogin claim; the role claim is optional.
type JWTResolver struct {
	secret []byte
}

// NewJWTResolver creates a resolver with the shared signing secret.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

// Resolve parses and validates the token and extracts the identity claims.
func (r *JWTResolver) Resolve(token string) (Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpiredToken
		}
		return Principal{}, ErrInvalidToken
	}

	login, _ := claims["userlogin"].(string)
	if login == "" {
		return Principal{}, fmt.Errorf("%w: missing userlogin claim", ErrInvalidToken)
	}
	role, _ := claims["role"].(string)
	return Principal{Login: login, Role: role}, nil
}

// Issue creates a signed token for the given principal. Primarily used by
// tests; token issuance in production belongs to the auth service.
func (r *JWTResolver) Issue(p Principal, claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["userlogin"] = p.Login
	if p.Role != "" {
		claims["role"] = p.Role
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}
