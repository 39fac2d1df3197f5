package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/memento-project/memento/models"
)

// AccountRepository resolves owner identities. The engine never creates
// accounts; registration lives outside it.
type AccountRepository interface {
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (models.Account, error)
}

// CaseRepository persists death-suspicion cases. All status mutations are
// guarded compare-and-swap updates; the boolean results report whether
// this caller won the transition.
type CaseRepository interface {
	// CreateCaseWithVerifications inserts the case and its whole
	// invitation batch in one transaction, so a case never exists
	// without its tokens. An account with an active case yields
	// [ErrActiveCaseExists].
	CreateCaseWithVerifications(ctx context.Context, c models.Case, verifications []models.Verification) (models.Case, []models.Verification, error)
	GetCase(ctx context.Context, caseID int64) (models.Case, error)
	ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	HasActiveCase(ctx context.Context, accountID int64) (bool, error)

	// ResolveOpenCase moves an OPEN case to next (CONFIRMED or REJECTED),
	// stamping resolved_at. Returns false when the case already left OPEN.
	ResolveOpenCase(ctx context.Context, caseID int64, next models.CaseStatus, now time.Time) (bool, error)

	// FinalizeCase moves a CONFIRMED case to FINAL, stamping finalized_at
	// and appending note. Returns false when the case is no longer CONFIRMED.
	FinalizeCase(ctx context.Context, caseID int64, note string, now time.Time) (bool, error)

	// CancelActiveCasesByOwner cancels every OPEN and CONFIRMED case of the
	// account and reports how many rows were moved.
	CancelActiveCasesByOwner(ctx context.Context, accountID int64, note string, now time.Time) (int64, error)

	// AdminSetStatus forces a non-FINAL case into the given status and
	// appends note. FINAL targets yield [ErrCaseFinalized].
	AdminSetStatus(ctx context.Context, caseID int64, status models.CaseStatus, note string, now time.Time) error

	// ListEscalatableCases returns CONFIRMED cases whose confirmation
	// moment is at or before cutoff.
	ListEscalatableCases(ctx context.Context, cutoff time.Time) ([]models.Case, error)
}

// VerificationRepository persists trusted-contact verifications and their
// single-use tokens.
type VerificationRepository interface {
	GetVerificationByToken(ctx context.Context, token string) (models.Verification, error)

	// DecideVerification moves a PENDING verification to the decided
	// status. Returns false when the token was already redeemed.
	DecideVerification(ctx context.Context, verificationID int64, status models.VerificationStatus, now time.Time) (bool, error)

	// TallyVerifications aggregates the decision state of a case's
	// verifications for quorum evaluation.
	TallyVerifications(ctx context.Context, caseID int64) (models.QuorumTally, error)
}

// CapsuleRepository persists time capsules. Released capsules are
// immutable; the release flip itself is a guarded update.
type CapsuleRepository interface {
	CreateCapsule(ctx context.Context, c models.Capsule) (models.Capsule, error)
	GetCapsule(ctx context.Context, capsuleID int64, accountID int64) (models.Capsule, error)
	ListCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error)
	UpdateCapsule(ctx context.Context, capsuleID int64, accountID int64, upd models.CapsuleUpdateRequest, now time.Time) error
	DeleteCapsule(ctx context.Context, capsuleID int64, accountID int64) error

	// ReleaseCapsule flips released false -> true. Returns false when the
	// capsule was already released by another sweep.
	ReleaseCapsule(ctx context.Context, capsuleID int64, now time.Time) (bool, error)

	// ListDueCapsules returns unreleased IMMEDIATE capsules and ON_DATE
	// capsules whose release moment has passed.
	ListDueCapsules(ctx context.Context, now time.Time) ([]models.Capsule, error)

	// ListDeathReleasableCapsules returns unreleased ON_DEATH capsules
	// whose owning account has a FINAL case.
	ListDeathReleasableCapsules(ctx context.Context) ([]models.Capsule, error)

	// ListOnDeathCapsules returns the account's unreleased ON_DEATH
	// capsules, used for the immediate release on finalization.
	ListOnDeathCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error)
}

// ContactRepository persists trusted contacts.
type ContactRepository interface {
	CreateContact(ctx context.Context, c models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, accountID int64) ([]models.Contact, error)
	CountContacts(ctx context.Context, accountID int64) (int, error)
	DeleteContact(ctx context.Context, contactID int64, accountID int64) error
}

// WillRepository reads stored-will pointers. The engine never writes them.
type WillRepository interface {
	GetWillDocument(ctx context.Context, accountID int64) (models.WillDocument, error)
}
