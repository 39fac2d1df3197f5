package models

// OpenCaseResponse acknowledges a newly opened case. The number of
// invited contacts lets the reporter know how many attestations are
// outstanding without revealing who the contacts are.
type OpenCaseResponse struct {
	// CaseID is the identifier of the created case.
	CaseID int64 `json:"case_id"`

	// InvitedContacts is how many verification links were issued.
	InvitedContacts int `json:"invited_contacts"`
}

// RedeemResponse reports the effect of a token redemption so the
// verification page can render precise feedback.
type RedeemResponse struct {
	// CaseID is the parent case of the redeemed verification.
	CaseID int64 `json:"case_id"`

	// CaseStatus is the case's status after quorum evaluation.
	CaseStatus CaseStatus `json:"case_status"`

	// Decision echoes the recorded decision.
	Decision Decision `json:"decision"`
}

// CancelCaseResponse reports how many cases the owner cancellation
// swept up.
type CancelCaseResponse struct {
	// CanceledCount is the number of cases moved to CANCELED_BY_OWNER.
	CanceledCount int64 `json:"canceled_count"`
}

// ErrorResponse is the uniform error body: a stable machine-readable
// code plus a human-readable message. The code set is fixed so calling
// UIs can branch on it.
type ErrorResponse struct {
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
}
