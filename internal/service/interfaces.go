package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/memento-project/memento/models"
)

// CaseService owns the death-suspicion case lifecycle: opening cases,
// owner cancellation, the administrative surface and the escalation
// sweep.
type CaseService interface {
	// OpenCase files a death report against the named account, invites
	// every registered trusted contact and dispatches their verification
	// links.
	OpenCase(ctx context.Context, req models.OpenCaseRequest) (models.OpenCaseResponse, error)

	// CancelActiveCases moves every OPEN and CONFIRMED case of the
	// account to CANCELED_BY_OWNER.
	CancelActiveCases(ctx context.Context, accountID int64, req models.CancelCaseRequest) (models.CancelCaseResponse, error)

	// GetCase loads one case for the admin surface.
	GetCase(ctx context.Context, caseID int64) (models.Case, error)

	// ListCases returns cases matching the filter for the admin surface.
	ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)

	// AdminUpdateCase forces a case status and appends an operator note.
	AdminUpdateCase(ctx context.Context, caseID int64, req models.AdminCaseUpdateRequest) (models.Case, error)

	// EscalateDueCases finalizes every CONFIRMED case whose waiting
	// period has elapsed at now and runs the finalization effects.
	// Returns how many cases this sweep finalized.
	EscalateDueCases(ctx context.Context, now time.Time) (int, error)
}

// VerificationService redeems trusted-contact verification tokens and
// evaluates the confirmation quorum.
type VerificationService interface {
	// Redeem consumes a single-use token, records the contact's decision
	// and re-evaluates the parent case's quorum.
	Redeem(ctx context.Context, req models.RedeemRequest) (models.RedeemResponse, error)
}

// CapsuleService owns time-capsule CRUD and the release sweep.
type CapsuleService interface {
	CreateCapsule(ctx context.Context, accountID int64, req models.CapsuleCreateRequest) (models.Capsule, error)
	GetCapsule(ctx context.Context, accountID int64, capsuleID int64) (models.Capsule, error)
	ListCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error)
	UpdateCapsule(ctx context.Context, accountID int64, capsuleID int64, req models.CapsuleUpdateRequest) (models.Capsule, error)
	DeleteCapsule(ctx context.Context, accountID int64, capsuleID int64) error

	// ReleaseEligibleCapsules releases every capsule eligible at now,
	// covering all three policies, and dispatches recipient notices.
	// Returns how many capsules this sweep released.
	ReleaseEligibleCapsules(ctx context.Context, now time.Time) (int, error)
}

// ContactService owns trusted-contact registration.
type ContactService interface {
	AddContact(ctx context.Context, accountID int64, req models.ContactCreateRequest) (models.Contact, error)
	ListContacts(ctx context.Context, accountID int64) ([]models.Contact, error)
	RemoveContact(ctx context.Context, accountID int64, contactID int64) error
}
