package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/notify"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

// Annotation prefixes recorded in the case note trail. Every automatic
// or privileged mutation leaves one, so the trail reads as an audit log.
const (
	ownerNotePrefix = "\n[owner] "
	adminNotePrefix = "\n[admin] "
	autoNotePrefix  = "\n[auto] "
)

// caseService is the concrete implementation of [CaseService].
//
// It coordinates the case state machine across repositories but never
// decides a transition itself: every status change goes through a
// guarded store update, and only the guard winner runs side effects.
type caseService struct {
	accountRepository store.AccountRepository
	caseRepository    store.CaseRepository
	contactRepository store.ContactRepository
	capsuleRepository store.CapsuleRepository
	willRepository    store.WillRepository

	gateway notify.Gateway

	// quorum is how many confirmations a case needs; opening requires at
	// least this many registered contacts.
	quorum int

	// waitingPeriod is how long a CONFIRMED case sits before escalation.
	waitingPeriod time.Duration

	logger *logger.Logger
}

// NewCaseService constructs a [CaseService] wired to the given
// repositories and notification gateway.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewCaseService(storages *store.Storages, gateway notify.Gateway, cfg config.Workers, logger *logger.Logger) CaseService {
	return &caseService{
		accountRepository: storages.AccountRepository,
		caseRepository:    storages.CaseRepository,
		contactRepository: storages.ContactRepository,
		capsuleRepository: storages.CapsuleRepository,
		willRepository:    storages.WillRepository,
		gateway:           gateway,
		quorum:            cfg.Quorum,
		waitingPeriod:     cfg.WaitingPeriod,
		logger:            logger,
	}
}

// OpenCase files a death report against the account named in req.
//
// The subject must exist, must have at least quorum trusted contacts
// and must not already have an active case. On success a new OPEN case is
// created, one PENDING verification with a fresh single-use token is
// issued per trusted contact, and the verification links are dispatched
// in the background.
//
// Returns:
//   - ErrInvalidDataProvided if the reporter fields are incomplete.
//   - store.ErrAccountNotFound if no account carries the username.
//   - ErrInsufficientAttestors if the account has fewer contacts than
//     the confirmation quorum.
//   - ErrCaseAlreadyOpen if an OPEN or CONFIRMED case already exists.
func (s *caseService) OpenCase(ctx context.Context, req models.OpenCaseRequest) (models.OpenCaseResponse, error) {
	log := logger.FromContext(ctx)

	if req.TargetUsername == "" || req.ReporterName == "" || req.ReporterContact == "" {
		log.Error().Str("target_username", req.TargetUsername).Msg("invalid open-case data provided")
		return models.OpenCaseResponse{}, ErrInvalidDataProvided
	}

	account, err := s.accountRepository.FindAccountByUsername(ctx, req.TargetUsername)
	if err != nil {
		log.Err(err).Str("target_username", req.TargetUsername).Msg("failed to resolve case subject")
		return models.OpenCaseResponse{}, fmt.Errorf("resolving case subject: %w", err)
	}

	contacts, err := s.contactRepository.ListContacts(ctx, account.AccountID)
	if err != nil {
		return models.OpenCaseResponse{}, fmt.Errorf("listing trusted contacts: %w", err)
	}
	if len(contacts) < s.quorum {
		log.Warn().
			Int64("account_id", account.AccountID).
			Int("contacts", len(contacts)).
			Int("quorum", s.quorum).
			Msg("open-case rejected, not enough trusted contacts")
		return models.OpenCaseResponse{}, ErrInsufficientAttestors
	}

	hasActive, err := s.caseRepository.HasActiveCase(ctx, account.AccountID)
	if err != nil {
		return models.OpenCaseResponse{}, fmt.Errorf("checking active cases: %w", err)
	}
	if hasActive {
		return models.OpenCaseResponse{}, ErrCaseAlreadyOpen
	}

	now := time.Now()
	verifications := make([]models.Verification, 0, len(contacts))
	tokens := make(map[int64]string, len(contacts))
	for _, contact := range contacts {
		token, tokenErr := utils.NewVerificationToken()
		if tokenErr != nil {
			return models.OpenCaseResponse{}, fmt.Errorf("minting verification token: %w", tokenErr)
		}
		tokens[contact.ContactID] = token
		verifications = append(verifications, models.Verification{
			ContactID: contact.ContactID,
			Token:     token,
			IssuedAt:  now,
		})
	}

	// Case and invitation batch land atomically; the active-case unique
	// index closes the race two concurrent reports could otherwise win.
	newCase, _, err := s.caseRepository.CreateCaseWithVerifications(ctx, models.Case{
		AccountID:       account.AccountID,
		ReporterName:    req.ReporterName,
		ReporterContact: req.ReporterContact,
		Relation:        req.Relation,
		Message:         req.Message,
		Status:          models.CaseOpen,
		OpenedAt:        now,
	}, verifications)
	if err != nil {
		if errors.Is(err, store.ErrActiveCaseExists) {
			return models.OpenCaseResponse{}, ErrCaseAlreadyOpen
		}
		return models.OpenCaseResponse{}, fmt.Errorf("creating case: %w", err)
	}

	log.Info().
		Int64("case_id", newCase.CaseID).
		Int64("account_id", account.AccountID).
		Int("invited_contacts", len(contacts)).
		Msg("case opened")

	for _, contact := range contacts {
		contact := contact
		token := tokens[contact.ContactID]
		notify.Dispatch(s.logger, "verification-link", func(ctx context.Context) error {
			return s.gateway.SendVerificationLink(ctx, contact, newCase, token)
		})
	}

	return models.OpenCaseResponse{
		CaseID:          newCase.CaseID,
		InvitedContacts: len(contacts),
	}, nil
}

// CancelActiveCases moves every OPEN and CONFIRMED case of the account
// to CANCELED_BY_OWNER, appending the owner's reason to the note trail.
//
// Returns ErrNoCancelableCase when the account has no active case.
func (s *caseService) CancelActiveCases(ctx context.Context, accountID int64, req models.CancelCaseRequest) (models.CancelCaseResponse, error) {
	log := logger.FromContext(ctx)

	reason := req.Reason
	if reason == "" {
		reason = "canceled by owner"
	}

	canceled, err := s.caseRepository.CancelActiveCasesByOwner(ctx, accountID, ownerNotePrefix+reason, time.Now())
	if err != nil {
		return models.CancelCaseResponse{}, fmt.Errorf("canceling active cases: %w", err)
	}
	if canceled == 0 {
		return models.CancelCaseResponse{}, ErrNoCancelableCase
	}

	log.Info().
		Int64("account_id", accountID).
		Int64("canceled", canceled).
		Msg("owner canceled active cases")

	return models.CancelCaseResponse{CanceledCount: canceled}, nil
}

// GetCase loads one case by identifier.
func (s *caseService) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	foundCase, err := s.caseRepository.GetCase(ctx, caseID)
	if err != nil {
		return models.Case{}, fmt.Errorf("loading case: %w", err)
	}

	return foundCase, nil
}

// ListCases returns cases matching the filter, newest first.
//
// Returns ErrInvalidDataProvided for an unknown status filter.
func (s *caseService) ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidDataProvided
	}

	cases, err := s.caseRepository.ListCases(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	return cases, nil
}

// AdminUpdateCase forces a case into the requested status and appends
// the operator note.
//
// FINAL can never be forced, and a FINAL case cannot be moved
// (store.ErrCaseFinalized). CANCELED_BY_OWNER is reserved for the owner
// path.
func (s *caseService) AdminUpdateCase(ctx context.Context, caseID int64, req models.AdminCaseUpdateRequest) (models.Case, error) {
	log := logger.FromContext(ctx)

	switch req.Status {
	case models.CaseOpen, models.CaseConfirmed, models.CaseRejected, models.CaseCanceled:
	default:
		log.Error().Str("status", string(req.Status)).Msg("invalid admin status provided")
		return models.Case{}, ErrInvalidDataProvided
	}

	note := ""
	if req.AdminNote != "" {
		note = adminNotePrefix + req.AdminNote
	}

	if err := s.caseRepository.AdminSetStatus(ctx, caseID, req.Status, note, time.Now()); err != nil {
		return models.Case{}, fmt.Errorf("admin case update: %w", err)
	}

	log.Info().
		Int64("case_id", caseID).
		Str("status", string(req.Status)).
		Msg("admin forced case status")

	return s.GetCase(ctx, caseID)
}

// EscalateDueCases finalizes every CONFIRMED case whose waiting period
// has elapsed at now. Each case is finalized through the guarded
// CONFIRMED -> FINAL update; only guard winners run the finalization
// effects, so concurrent sweeps never double-release or double-notify.
func (s *caseService) EscalateDueCases(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.caseRepository.ListEscalatableCases(ctx, now.Add(-s.waitingPeriod))
	if err != nil {
		return 0, fmt.Errorf("listing escalatable cases: %w", err)
	}

	finalized := 0
	for _, dueCase := range due {
		won, finErr := s.caseRepository.FinalizeCase(ctx, dueCase.CaseID, autoNotePrefix+"finalized after waiting period elapsed", now)
		if finErr != nil {
			log.Err(finErr).Int64("case_id", dueCase.CaseID).Msg("failed to finalize case")
			continue
		}
		if !won {
			continue
		}

		finalized++
		log.Info().
			Int64("case_id", dueCase.CaseID).
			Int64("account_id", dueCase.AccountID).
			Msg("case finalized")

		s.runFinalizationEffects(ctx, dueCase.AccountID, now)
	}

	return finalized, nil
}

// runFinalizationEffects releases the account's ON_DEATH capsules and
// dispatches the will-location notice. Effects run once per finalized
// case because only the finalize guard winner reaches this point; the
// capsule release guard additionally keeps each capsule single-shot.
func (s *caseService) runFinalizationEffects(ctx context.Context, accountID int64, now time.Time) {
	log := logger.FromContext(ctx)

	capsules, err := s.capsuleRepository.ListOnDeathCapsules(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("failed to list on-death capsules")
	}
	for _, capsule := range capsules {
		won, relErr := s.capsuleRepository.ReleaseCapsule(ctx, capsule.CapsuleID, now)
		if relErr != nil {
			log.Err(relErr).Int64("capsule_id", capsule.CapsuleID).Msg("failed to release on-death capsule")
			continue
		}
		if !won || capsule.RecipientContact == "" {
			continue
		}

		capsule := capsule
		notify.Dispatch(s.logger, "capsule-release", func(ctx context.Context) error {
			return s.gateway.SendReleaseNotice(ctx, capsule)
		})
	}

	will, err := s.willRepository.GetWillDocument(ctx, accountID)
	if err != nil {
		if !errors.Is(err, store.ErrWillNotFound) {
			log.Err(err).Int64("account_id", accountID).Msg("failed to load will document")
		}
		return
	}
	if will.BeneficiaryEmail == "" {
		return
	}

	notify.Dispatch(s.logger, "will-location", func(ctx context.Context) error {
		return s.gateway.SendWillLocationNotice(ctx, will)
	})
}
