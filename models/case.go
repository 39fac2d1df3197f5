package models

import "time"

// CaseStatus is the lifecycle state of a death-suspicion case.
type CaseStatus string

// Case lifecycle states. OPEN and CONFIRMED are the only non-terminal
// states; every other status is terminal and accepts no further
// transitions except administrative note updates.
const (
	// CaseOpen is the initial state: verifications have been issued and
	// the case is waiting for trusted-contact decisions.
	CaseOpen CaseStatus = "OPEN"

	// CaseConfirmed means the confirmation quorum was reached. The case
	// now sits in the waiting period before escalation to FINAL.
	CaseConfirmed CaseStatus = "CONFIRMED"

	// CaseFinal is the irrevocable terminal state reached when the
	// waiting period elapses without an owner cancellation.
	CaseFinal CaseStatus = "FINAL"

	// CaseRejected means quorum became unreachable: every verification
	// was decided and confirmations stayed below the quorum.
	CaseRejected CaseStatus = "REJECTED"

	// CaseCanceled is the administrative cancellation terminal state.
	CaseCanceled CaseStatus = "CANCELED"

	// CaseCanceledByOwner means the subject account canceled the case
	// before it became FINAL (false-positive escape hatch).
	CaseCanceledByOwner CaseStatus = "CANCELED_BY_OWNER"
)

// Terminal reports whether the status accepts no further transitions.
func (s CaseStatus) Terminal() bool {
	switch s {
	case CaseFinal, CaseRejected, CaseCanceled, CaseCanceledByOwner:
		return true
	}
	return false
}

// Valid reports whether s is one of the known case statuses.
func (s CaseStatus) Valid() bool {
	switch s {
	case CaseOpen, CaseConfirmed, CaseFinal, CaseRejected, CaseCanceled, CaseCanceledByOwner:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine permits an edge from
// s to next. The full edge set:
//
//	OPEN      → CONFIRMED | REJECTED | CANCELED | CANCELED_BY_OWNER
//	CONFIRMED → FINAL | CANCELED | CANCELED_BY_OWNER
//
// Terminal states have no outgoing edges.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	switch s {
	case CaseOpen:
		return next == CaseConfirmed || next == CaseRejected ||
			next == CaseCanceled || next == CaseCanceledByOwner
	case CaseConfirmed:
		return next == CaseFinal || next == CaseCanceled || next == CaseCanceledByOwner
	}
	return false
}

// Case is one death-suspicion episode for an account. A case is created
// by an open-case request, mutated only through guarded status
// transitions, and becomes immutable (except AdminNote) once terminal.
type Case struct {
	// CaseID is the internal unique identifier of the case.
	CaseID int64 `json:"id"`

	// AccountID identifies the account whose death is suspected.
	AccountID int64 `json:"account_id"`

	// ReporterName is the free-text name supplied by whoever opened the case.
	ReporterName string `json:"reporter_name"`

	// ReporterContact is the reporter's callback channel (email or phone).
	ReporterContact string `json:"reporter_contact"`

	// Relation describes the reporter's relation to the subject account.
	Relation string `json:"relation"`

	// Message is the free-text reason attached to the open-case request.
	Message string `json:"message"`

	// Status is the current lifecycle state. Mutated only via guarded
	// compare-and-swap updates in the store layer.
	Status CaseStatus `json:"status"`

	// AdminNote accumulates operator and system annotations. It is the
	// only field that may change after a terminal transition.
	AdminNote string `json:"admin_note,omitempty"`

	// OpenedAt is when the case was created.
	OpenedAt time.Time `json:"opened_at"`

	// ResolvedAt is set the first time the case leaves OPEN and is never
	// cleared or moved afterwards.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	// FinalizedAt is set iff the case reached FINAL.
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Case model.
func (c Case) TableName() string {
	return "death_cases"
}
