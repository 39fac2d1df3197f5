package models

import "time"

// VerificationStatus is the decision state of a single trusted-contact
// verification.
type VerificationStatus string

const (
	// VerificationPending means the contact has not redeemed the token yet.
	VerificationPending VerificationStatus = "PENDING"

	// VerificationConfirmed means the contact attested the death.
	VerificationConfirmed VerificationStatus = "CONFIRMED"

	// VerificationRejected means the contact denied the report.
	VerificationRejected VerificationStatus = "REJECTED"
)

// Decision is the choice a trusted contact submits when redeeming a
// verification token.
type Decision string

const (
	DecisionConfirm Decision = "CONFIRM"
	DecisionReject  Decision = "REJECT"
)

// Valid reports whether d is a known decision value.
func (d Decision) Valid() bool {
	return d == DecisionConfirm || d == DecisionReject
}

// VerificationStatus maps the decision to the verification state it produces.
func (d Decision) VerificationStatus() VerificationStatus {
	if d == DecisionReject {
		return VerificationRejected
	}
	return VerificationConfirmed
}

// Verification is one trusted contact's invitation into a case. It holds
// the single-use token the contact redeems and the decision outcome.
// A verification is owned by its parent case and is removed with it.
type Verification struct {
	// VerificationID is the internal unique identifier.
	VerificationID int64 `json:"id"`

	// CaseID references the parent death-suspicion case.
	CaseID int64 `json:"case_id"`

	// ContactID references the invited trusted contact.
	ContactID int64 `json:"contact_id"`

	// Token is the opaque single-use redemption secret. Never logged.
	Token string `json:"-"`

	// Status transitions PENDING → CONFIRMED/REJECTED exactly once.
	Status VerificationStatus `json:"status"`

	// IssuedAt is when the token was minted; redemption is allowed only
	// within the configured TTL from this moment.
	IssuedAt time.Time `json:"issued_at"`

	// DecidedAt is set when the contact's decision lands.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Verification model.
func (v Verification) TableName() string {
	return "case_verifications"
}

// QuorumTally is the aggregate decision state of a case's verifications,
// used to evaluate quorum after every redemption.
type QuorumTally struct {
	// Confirmed is the number of CONFIRMED verifications.
	Confirmed int

	// Decided is the number of verifications that left PENDING
	// (confirmed plus rejected).
	Decided int

	// Total is the number of verifications issued for the case.
	Total int
}
