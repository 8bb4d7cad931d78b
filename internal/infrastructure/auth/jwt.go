package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"loanportal-backend/internal/domain/identity"
)

type portalClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier implements the identity assertion capability over HS256 bearer
// tokens. Token issuance happens elsewhere; this side only verifies.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(token string) (*identity.Claims, error) {
	var claims portalClaims
	tok, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, identity.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, identity.ErrUnauthorized
	}
	return &identity.Claims{UserID: claims.Subject, Role: claims.Role}, nil
}
