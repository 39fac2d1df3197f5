// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account
// identifier in the context. Used together with GetAccountIDFromContext
// for type-safe retrieval.
var AccountIDCtxKey = contextKey("accountID")

// AdminCtxKey is the key used to store the admin marker of the
// authenticated token in the context.
var AdminCtxKey = contextKey("admin")

// GetAccountIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// IsAdminFromContext reports whether the context carries an admin-marked
// token. Missing or mistyped values count as non-admin.
func IsAdminFromContext(ctx context.Context) bool {
	admin, ok := ctx.Value(AdminCtxKey).(bool)
	return ok && admin
}
