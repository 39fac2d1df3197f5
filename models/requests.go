package models

import "time"

// OpenCaseRequest is the inbound payload of the public open-case
// endpoint. The reporter does not need an account; the subject is named
// by username.
type OpenCaseRequest struct {
	// TargetUsername names the account whose death is being reported.
	TargetUsername string `json:"target_username"`

	// ReporterName is who is filing the report.
	ReporterName string `json:"reporter_name"`

	// ReporterContact is the reporter's callback channel.
	ReporterContact string `json:"reporter_contact"`

	// Relation describes the reporter's relation to the subject.
	Relation string `json:"relation,omitempty"`

	// Message is the free-text reason for the report.
	Message string `json:"message,omitempty"`
}

// RedeemRequest is the inbound payload of the public token-redemption
// endpoint.
type RedeemRequest struct {
	// Token is the single-use verification token from the delivered link.
	Token string `json:"token"`

	// Decision is CONFIRM or REJECT. Empty defaults to CONFIRM, matching
	// the link-click flow where the page only offers an explicit reject.
	Decision Decision `json:"decision,omitempty"`
}

// CancelCaseRequest is the authenticated owner-cancel payload.
type CancelCaseRequest struct {
	// Reason is an optional note recorded on every canceled case.
	Reason string `json:"reason,omitempty"`
}

// AdminCaseUpdateRequest is the operator correction payload.
type AdminCaseUpdateRequest struct {
	// Status is the forced status; one of OPEN, CONFIRMED, REJECTED,
	// CANCELED. FINAL cannot be forced and a FINAL case cannot be moved.
	Status CaseStatus `json:"status"`

	// AdminNote is appended to the case's annotation trail.
	AdminNote string `json:"admin_note,omitempty"`
}

// CaseFilter narrows admin case listings.
type CaseFilter struct {
	// Status limits the listing to one lifecycle state when non-empty.
	Status CaseStatus

	// AccountID limits the listing to one subject account when non-zero.
	AccountID int64
}

// CapsuleCreateRequest is the owner's capsule creation payload.
type CapsuleCreateRequest struct {
	Title            string        `json:"title"`
	Message          string        `json:"message,omitempty"`
	MediaURL         string        `json:"media_url,omitempty"`
	ReleasePolicy    ReleasePolicy `json:"release_policy"`
	ReleaseAt        *time.Time    `json:"release_at,omitempty"`
	RecipientName    string        `json:"recipient_name,omitempty"`
	RecipientContact string        `json:"recipient_contact,omitempty"`
}

// CapsuleUpdateRequest carries partial edits to an unreleased capsule.
// Nil fields are left unchanged.
type CapsuleUpdateRequest struct {
	Title            *string        `json:"title,omitempty"`
	Message          *string        `json:"message,omitempty"`
	MediaURL         *string        `json:"media_url,omitempty"`
	ReleasePolicy    *ReleasePolicy `json:"release_policy,omitempty"`
	ReleaseAt        *time.Time     `json:"release_at,omitempty"`
	RecipientName    *string        `json:"recipient_name,omitempty"`
	RecipientContact *string        `json:"recipient_contact,omitempty"`
}

// ContactCreateRequest registers a trusted contact for the
// authenticated account.
type ContactCreateRequest struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}
