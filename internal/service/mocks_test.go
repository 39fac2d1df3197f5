package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memento-project/memento/models"
)

// Hand-rolled mocks for the store repositories and the notification
// gateway. Each method delegates to an optional func field so every test
// only wires the calls it cares about.

var errStorage = errors.New("storage error")

type mockAccountRepository struct {
	findAccountByUsernameFn func(ctx context.Context, username string) (models.Account, error)
	getAccountByIDFn        func(ctx context.Context, accountID int64) (models.Account, error)
}

func (m *mockAccountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	if m.findAccountByUsernameFn != nil {
		return m.findAccountByUsernameFn(ctx, username)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) GetAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(ctx, accountID)
	}
	return models.Account{}, nil
}

type mockCaseRepository struct {
	createCaseWithVerificationsFn func(ctx context.Context, c models.Case, verifications []models.Verification) (models.Case, []models.Verification, error)
	getCaseFn                     func(ctx context.Context, caseID int64) (models.Case, error)
	listCasesFn                   func(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	hasActiveCaseFn               func(ctx context.Context, accountID int64) (bool, error)
	resolveOpenCaseFn             func(ctx context.Context, caseID int64, next models.CaseStatus, now time.Time) (bool, error)
	finalizeCaseFn                func(ctx context.Context, caseID int64, note string, now time.Time) (bool, error)
	cancelActiveCasesByOwnerFn    func(ctx context.Context, accountID int64, note string, now time.Time) (int64, error)
	adminSetStatusFn              func(ctx context.Context, caseID int64, status models.CaseStatus, note string, now time.Time) error
	listEscalatableCasesFn        func(ctx context.Context, cutoff time.Time) ([]models.Case, error)
}

func (m *mockCaseRepository) CreateCaseWithVerifications(ctx context.Context, c models.Case, verifications []models.Verification) (models.Case, []models.Verification, error) {
	if m.createCaseWithVerificationsFn != nil {
		return m.createCaseWithVerificationsFn(ctx, c, verifications)
	}
	return c, verifications, nil
}

func (m *mockCaseRepository) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	if m.getCaseFn != nil {
		return m.getCaseFn(ctx, caseID)
	}
	return models.Case{CaseID: caseID}, nil
}

func (m *mockCaseRepository) ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	if m.listCasesFn != nil {
		return m.listCasesFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockCaseRepository) HasActiveCase(ctx context.Context, accountID int64) (bool, error) {
	if m.hasActiveCaseFn != nil {
		return m.hasActiveCaseFn(ctx, accountID)
	}
	return false, nil
}

func (m *mockCaseRepository) ResolveOpenCase(ctx context.Context, caseID int64, next models.CaseStatus, now time.Time) (bool, error) {
	if m.resolveOpenCaseFn != nil {
		return m.resolveOpenCaseFn(ctx, caseID, next, now)
	}
	return true, nil
}

func (m *mockCaseRepository) FinalizeCase(ctx context.Context, caseID int64, note string, now time.Time) (bool, error) {
	if m.finalizeCaseFn != nil {
		return m.finalizeCaseFn(ctx, caseID, note, now)
	}
	return true, nil
}

func (m *mockCaseRepository) CancelActiveCasesByOwner(ctx context.Context, accountID int64, note string, now time.Time) (int64, error) {
	if m.cancelActiveCasesByOwnerFn != nil {
		return m.cancelActiveCasesByOwnerFn(ctx, accountID, note, now)
	}
	return 0, nil
}

func (m *mockCaseRepository) AdminSetStatus(ctx context.Context, caseID int64, status models.CaseStatus, note string, now time.Time) error {
	if m.adminSetStatusFn != nil {
		return m.adminSetStatusFn(ctx, caseID, status, note, now)
	}
	return nil
}

func (m *mockCaseRepository) ListEscalatableCases(ctx context.Context, cutoff time.Time) ([]models.Case, error) {
	if m.listEscalatableCasesFn != nil {
		return m.listEscalatableCasesFn(ctx, cutoff)
	}
	return nil, nil
}

type mockVerificationRepository struct {
	getVerificationByTokenFn func(ctx context.Context, token string) (models.Verification, error)
	decideVerificationFn     func(ctx context.Context, verificationID int64, status models.VerificationStatus, now time.Time) (bool, error)
	tallyVerificationsFn     func(ctx context.Context, caseID int64) (models.QuorumTally, error)
}

func (m *mockVerificationRepository) GetVerificationByToken(ctx context.Context, token string) (models.Verification, error) {
	if m.getVerificationByTokenFn != nil {
		return m.getVerificationByTokenFn(ctx, token)
	}
	return models.Verification{}, nil
}

func (m *mockVerificationRepository) DecideVerification(ctx context.Context, verificationID int64, status models.VerificationStatus, now time.Time) (bool, error) {
	if m.decideVerificationFn != nil {
		return m.decideVerificationFn(ctx, verificationID, status, now)
	}
	return true, nil
}

func (m *mockVerificationRepository) TallyVerifications(ctx context.Context, caseID int64) (models.QuorumTally, error) {
	if m.tallyVerificationsFn != nil {
		return m.tallyVerificationsFn(ctx, caseID)
	}
	return models.QuorumTally{}, nil
}

type mockCapsuleRepository struct {
	createCapsuleFn               func(ctx context.Context, c models.Capsule) (models.Capsule, error)
	getCapsuleFn                  func(ctx context.Context, capsuleID, accountID int64) (models.Capsule, error)
	listCapsulesFn                func(ctx context.Context, accountID int64) ([]models.Capsule, error)
	updateCapsuleFn               func(ctx context.Context, capsuleID, accountID int64, upd models.CapsuleUpdateRequest, now time.Time) error
	deleteCapsuleFn               func(ctx context.Context, capsuleID, accountID int64) error
	releaseCapsuleFn              func(ctx context.Context, capsuleID int64, now time.Time) (bool, error)
	listDueCapsulesFn             func(ctx context.Context, now time.Time) ([]models.Capsule, error)
	listDeathReleasableCapsulesFn func(ctx context.Context) ([]models.Capsule, error)
	listOnDeathCapsulesFn         func(ctx context.Context, accountID int64) ([]models.Capsule, error)
}

func (m *mockCapsuleRepository) CreateCapsule(ctx context.Context, c models.Capsule) (models.Capsule, error) {
	if m.createCapsuleFn != nil {
		return m.createCapsuleFn(ctx, c)
	}
	return c, nil
}

func (m *mockCapsuleRepository) GetCapsule(ctx context.Context, capsuleID, accountID int64) (models.Capsule, error) {
	if m.getCapsuleFn != nil {
		return m.getCapsuleFn(ctx, capsuleID, accountID)
	}
	return models.Capsule{CapsuleID: capsuleID, AccountID: accountID}, nil
}

func (m *mockCapsuleRepository) ListCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error) {
	if m.listCapsulesFn != nil {
		return m.listCapsulesFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockCapsuleRepository) UpdateCapsule(ctx context.Context, capsuleID, accountID int64, upd models.CapsuleUpdateRequest, now time.Time) error {
	if m.updateCapsuleFn != nil {
		return m.updateCapsuleFn(ctx, capsuleID, accountID, upd, now)
	}
	return nil
}

func (m *mockCapsuleRepository) DeleteCapsule(ctx context.Context, capsuleID, accountID int64) error {
	if m.deleteCapsuleFn != nil {
		return m.deleteCapsuleFn(ctx, capsuleID, accountID)
	}
	return nil
}

func (m *mockCapsuleRepository) ReleaseCapsule(ctx context.Context, capsuleID int64, now time.Time) (bool, error) {
	if m.releaseCapsuleFn != nil {
		return m.releaseCapsuleFn(ctx, capsuleID, now)
	}
	return true, nil
}

func (m *mockCapsuleRepository) ListDueCapsules(ctx context.Context, now time.Time) ([]models.Capsule, error) {
	if m.listDueCapsulesFn != nil {
		return m.listDueCapsulesFn(ctx, now)
	}
	return nil, nil
}

func (m *mockCapsuleRepository) ListDeathReleasableCapsules(ctx context.Context) ([]models.Capsule, error) {
	if m.listDeathReleasableCapsulesFn != nil {
		return m.listDeathReleasableCapsulesFn(ctx)
	}
	return nil, nil
}

func (m *mockCapsuleRepository) ListOnDeathCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error) {
	if m.listOnDeathCapsulesFn != nil {
		return m.listOnDeathCapsulesFn(ctx, accountID)
	}
	return nil, nil
}

type mockContactRepository struct {
	createContactFn func(ctx context.Context, c models.Contact) (models.Contact, error)
	listContactsFn  func(ctx context.Context, accountID int64) ([]models.Contact, error)
	countContactsFn func(ctx context.Context, accountID int64) (int, error)
	deleteContactFn func(ctx context.Context, contactID, accountID int64) error
}

func (m *mockContactRepository) CreateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	if m.createContactFn != nil {
		return m.createContactFn(ctx, c)
	}
	return c, nil
}

func (m *mockContactRepository) ListContacts(ctx context.Context, accountID int64) ([]models.Contact, error) {
	if m.listContactsFn != nil {
		return m.listContactsFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockContactRepository) CountContacts(ctx context.Context, accountID int64) (int, error) {
	if m.countContactsFn != nil {
		return m.countContactsFn(ctx, accountID)
	}
	return 0, nil
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, contactID, accountID int64) error {
	if m.deleteContactFn != nil {
		return m.deleteContactFn(ctx, contactID, accountID)
	}
	return nil
}

type mockWillRepository struct {
	getWillDocumentFn func(ctx context.Context, accountID int64) (models.WillDocument, error)
}

func (m *mockWillRepository) GetWillDocument(ctx context.Context, accountID int64) (models.WillDocument, error) {
	if m.getWillDocumentFn != nil {
		return m.getWillDocumentFn(ctx, accountID)
	}
	return models.WillDocument{}, nil
}

type mockGateway struct {
	sendVerificationLinkFn   func(ctx context.Context, contact models.Contact, c models.Case, token string) error
	sendReleaseNoticeFn      func(ctx context.Context, capsule models.Capsule) error
	sendWillLocationNoticeFn func(ctx context.Context, will models.WillDocument) error
}

func (m *mockGateway) SendVerificationLink(ctx context.Context, contact models.Contact, c models.Case, token string) error {
	if m.sendVerificationLinkFn != nil {
		return m.sendVerificationLinkFn(ctx, contact, c, token)
	}
	return nil
}

func (m *mockGateway) SendReleaseNotice(ctx context.Context, capsule models.Capsule) error {
	if m.sendReleaseNoticeFn != nil {
		return m.sendReleaseNoticeFn(ctx, capsule)
	}
	return nil
}

func (m *mockGateway) SendWillLocationNotice(ctx context.Context, will models.WillDocument) error {
	if m.sendWillLocationNoticeFn != nil {
		return m.sendWillLocationNoticeFn(ctx, will)
	}
	return nil
}

// waitForSends blocks until n values arrive on ch. Notices dispatch on
// background goroutines, so tests observing them must wait.
func waitForSends(t *testing.T, ch <-chan string, n int) []string {
	t.Helper()

	got := make([]string, 0, n)
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case v := <-ch:
			got = append(got, v)
		case <-timeout:
			t.Fatalf("timed out waiting for notices: got %d of %d", len(got), n)
		}
	}
	return got
}
