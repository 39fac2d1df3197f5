package models

import "time"

// Contact is a trusted contact registered by an account owner. Trusted
// contacts are the attestors invited into death-suspicion cases; the
// engine reads their identity and delivery channel, nothing more.
type Contact struct {
	// ContactID is the internal unique identifier.
	ContactID int64 `json:"id"`

	// AccountID identifies the account that registered the contact.
	AccountID int64 `json:"account_id"`

	// Name is the contact's display name.
	Name string `json:"name"`

	// Relation describes the contact's relation to the account owner.
	Relation string `json:"relation,omitempty"`

	// Email is the channel verification links are delivered to.
	Email string `json:"email"`

	// Phone is an optional secondary channel.
	Phone string `json:"phone,omitempty"`

	// CreatedAt is when the contact was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "trusted_contacts"
}
