package models

import "time"

// ReleasePolicy determines when a time capsule becomes visible.
type ReleasePolicy string

const (
	// ReleaseImmediate capsules are eligible for release as soon as they
	// are created.
	ReleaseImmediate ReleasePolicy = "IMMEDIATE"

	// ReleaseOnDate capsules are released once ReleaseAt has passed.
	ReleaseOnDate ReleasePolicy = "ON_DATE"

	// ReleaseOnDeath capsules are released once the owning account has a
	// case in the FINAL state.
	ReleaseOnDeath ReleasePolicy = "ON_DEATH"
)

// Valid reports whether p is a known release policy.
func (p ReleasePolicy) Valid() bool {
	switch p {
	case ReleaseImmediate, ReleaseOnDate, ReleaseOnDeath:
		return true
	}
	return false
}

// Capsule is a time-locked content item. The owner may edit it freely
// until it is released; after that every mutation is rejected. Released
// is monotonic: it flips false→true exactly once via a guarded update.
type Capsule struct {
	// CapsuleID is the internal unique identifier.
	CapsuleID int64 `json:"id"`

	// AccountID identifies the owning account.
	AccountID int64 `json:"account_id"`

	// Title is the capsule's display title.
	Title string `json:"title"`

	// Message is the stored text content (letter, will excerpt, etc.).
	Message string `json:"message,omitempty"`

	// MediaURL optionally points at an externally stored attachment.
	MediaURL string `json:"media_url,omitempty"`

	// ReleasePolicy selects the release rule for this capsule.
	ReleasePolicy ReleasePolicy `json:"release_policy"`

	// ReleaseAt is the scheduled release moment. Required iff the policy
	// is ON_DATE; ignored otherwise.
	ReleaseAt *time.Time `json:"release_at,omitempty"`

	// RecipientName is the intended recipient's display name.
	RecipientName string `json:"recipient_name,omitempty"`

	// RecipientContact is the private beneficiary channel (email/phone)
	// that receives the release notice, when set.
	RecipientContact string `json:"recipient_contact,omitempty"`

	// Released flips to true exactly once when the capsule is released.
	Released bool `json:"released"`

	// CreatedAt is when the owner created the capsule.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt tracks the last owner edit before release.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// ReleasedAt is set together with Released.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Capsule model.
func (c Capsule) TableName() string {
	return "time_capsules"
}
