package models

import "testing"

func TestCaseStatus_Terminal(t *testing.T) {
	terminal := []CaseStatus{CaseFinal, CaseRejected, CaseCanceled, CaseCanceledByOwner}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	for _, s := range []CaseStatus{CaseOpen, CaseConfirmed} {
		if s.Terminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}

func TestCaseStatus_CanTransitionTo(t *testing.T) {
	type edge struct {
		from, to CaseStatus
		allowed  bool
	}

	edges := []edge{
		{CaseOpen, CaseConfirmed, true},
		{CaseOpen, CaseRejected, true},
		{CaseOpen, CaseCanceled, true},
		{CaseOpen, CaseCanceledByOwner, true},
		{CaseOpen, CaseFinal, false},
		{CaseConfirmed, CaseFinal, true},
		{CaseConfirmed, CaseCanceledByOwner, true},
		{CaseConfirmed, CaseCanceled, true},
		{CaseConfirmed, CaseRejected, false},
		{CaseConfirmed, CaseOpen, false},
		// no transition ever leaves a terminal state
		{CaseFinal, CaseOpen, false},
		{CaseFinal, CaseCanceledByOwner, false},
		{CaseRejected, CaseConfirmed, false},
		{CaseCanceled, CaseOpen, false},
		{CaseCanceledByOwner, CaseFinal, false},
	}

	for _, e := range edges {
		if got := e.from.CanTransitionTo(e.to); got != e.allowed {
			t.Errorf("%s -> %s: expected allowed=%v, got %v", e.from, e.to, e.allowed, got)
		}
	}
}

func TestCaseStatus_Valid(t *testing.T) {
	for _, s := range []CaseStatus{CaseOpen, CaseConfirmed, CaseFinal, CaseRejected, CaseCanceled, CaseCanceledByOwner} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}

	if CaseStatus("PENDING").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestDecision_VerificationStatus(t *testing.T) {
	if DecisionConfirm.VerificationStatus() != VerificationConfirmed {
		t.Error("CONFIRM must map to CONFIRMED")
	}
	if DecisionReject.VerificationStatus() != VerificationRejected {
		t.Error("REJECT must map to REJECTED")
	}
}

func TestReleasePolicy_Valid(t *testing.T) {
	for _, p := range []ReleasePolicy{ReleaseImmediate, ReleaseOnDate, ReleaseOnDeath} {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if ReleasePolicy("ON_BIRTHDAY").Valid() {
		t.Error("expected unknown policy to be invalid")
	}
}
