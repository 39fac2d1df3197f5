package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token used on the authenticated surface
// (owner cancel, capsule CRUD, admin case management).
//
// It embeds [jwt.Token] for low-level operations and a custom claim set
// carrying the standard registered claims plus the admin marker.
//
// AccountID is a cached, parsed copy of the "sub" (subject) claim; it is
// populated after validation so handlers never re-parse the string form.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Only the compact string form leaves the process.
	*jwt.Token `json:"-"`

	// TokenClaims is the claim set embedded in the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	AccountID int64 `json:"-"`
}

// TokenClaims is the JWT claim set the engine issues and validates:
// the RFC 7519 registered claims plus an admin flag for the operator
// surface.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Admin marks tokens issued to operator accounts.
	Admin bool `json:"adm,omitempty"`
}

// GetAccountID extracts the account identifier from the token's "sub"
// (subject) claim and parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.TokenClaims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account ID from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account ID from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
