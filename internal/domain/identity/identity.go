// Package identity is the consumed identity-assertion capability: token in,
// {userID, role} out. Token issuance is out of scope.
package identity

import "errors"

var ErrUnauthorized = errors.New("unauthorized")

type Claims struct {
	UserID string
	Role   string
}

type Verifier interface {
	Verify(token string) (*Claims, error)
}
