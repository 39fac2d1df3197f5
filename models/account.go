package models

import "time"

// Account is the minimal owner identity the engine needs: enough to
// resolve an open-case request to a subject and to authorize
// owner-scoped operations. Credential handling lives outside the engine.
type Account struct {
	// AccountID is the internal unique identifier.
	AccountID int64 `json:"id"`

	// Username is the unique public handle an open-case request names.
	Username string `json:"username"`

	// Name is the display name.
	Name string `json:"name"`

	// IsAdmin marks operator accounts allowed to use the admin surface.
	IsAdmin bool `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
