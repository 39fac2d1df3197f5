package service

import (
	"context"
	"fmt"
	"time"

	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
)

// verificationService is the concrete implementation of
// [VerificationService].
type verificationService struct {
	caseRepository         store.CaseRepository
	verificationRepository store.VerificationRepository

	// quorum is how many CONFIRMED attestations move a case to CONFIRMED.
	quorum int

	// verificationTTL bounds how long after issuance a token stays
	// redeemable.
	verificationTTL time.Duration

	logger *logger.Logger
}

// NewVerificationService constructs a [VerificationService] wired to the
// given repositories.
func NewVerificationService(storages *store.Storages, cfg config.Workers, logger *logger.Logger) VerificationService {
	return &verificationService{
		caseRepository:         storages.CaseRepository,
		verificationRepository: storages.VerificationRepository,
		quorum:                 cfg.Quorum,
		verificationTTL:        cfg.VerificationTTL,
		logger:                 logger,
	}
}

// Redeem consumes a single-use verification token and records the
// contact's decision. An omitted decision defaults to CONFIRM, matching
// the link-click flow.
//
// After the decision lands, the parent case's quorum is re-evaluated:
// enough confirmations move the case to CONFIRMED; once every
// verification is decided without reaching quorum the case moves to
// REJECTED. Both transitions are guarded, so re-evaluation is idempotent
// and a case that already left OPEN (e.g. canceled by the owner) is left
// alone.
//
// Returns:
//   - ErrInvalidDataProvided for an empty token or unknown decision.
//   - store.ErrVerificationNotFound for an unknown token.
//   - ErrAlreadyDecided when the token was redeemed before.
//   - ErrTokenExpired when the token's TTL has elapsed.
func (s *verificationService) Redeem(ctx context.Context, req models.RedeemRequest) (models.RedeemResponse, error) {
	log := logger.FromContext(ctx)

	if req.Token == "" {
		return models.RedeemResponse{}, ErrInvalidDataProvided
	}
	decision := req.Decision
	if decision == "" {
		decision = models.DecisionConfirm
	}
	if !decision.Valid() {
		return models.RedeemResponse{}, ErrInvalidDataProvided
	}

	verification, err := s.verificationRepository.GetVerificationByToken(ctx, req.Token)
	if err != nil {
		return models.RedeemResponse{}, fmt.Errorf("resolving verification token: %w", err)
	}

	if verification.Status != models.VerificationPending {
		return models.RedeemResponse{}, ErrAlreadyDecided
	}

	now := time.Now()
	if now.After(verification.IssuedAt.Add(s.verificationTTL)) {
		return models.RedeemResponse{}, ErrTokenExpired
	}

	won, err := s.verificationRepository.DecideVerification(ctx, verification.VerificationID, decision.VerificationStatus(), now)
	if err != nil {
		return models.RedeemResponse{}, fmt.Errorf("recording decision: %w", err)
	}
	if !won {
		// Another redemption of the same token got there first.
		return models.RedeemResponse{}, ErrAlreadyDecided
	}

	log.Info().
		Int64("case_id", verification.CaseID).
		Int64("verification_id", verification.VerificationID).
		Str("decision", string(decision)).
		Msg("verification decided")

	if err = s.evaluateQuorum(ctx, verification.CaseID, now); err != nil {
		return models.RedeemResponse{}, err
	}

	parentCase, err := s.caseRepository.GetCase(ctx, verification.CaseID)
	if err != nil {
		return models.RedeemResponse{}, fmt.Errorf("loading case after decision: %w", err)
	}

	return models.RedeemResponse{
		CaseID:     parentCase.CaseID,
		CaseStatus: parentCase.Status,
		Decision:   decision,
	}, nil
}

// evaluateQuorum applies the quorum rules to the case's current tally.
// Losing the transition guard is not an error: it means the case already
// left OPEN by another path.
func (s *verificationService) evaluateQuorum(ctx context.Context, caseID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	tally, err := s.verificationRepository.TallyVerifications(ctx, caseID)
	if err != nil {
		return fmt.Errorf("tallying verifications: %w", err)
	}

	switch {
	case tally.Confirmed >= s.quorum:
		won, resErr := s.caseRepository.ResolveOpenCase(ctx, caseID, models.CaseConfirmed, now)
		if resErr != nil {
			return fmt.Errorf("confirming case: %w", resErr)
		}
		if won {
			log.Info().Int64("case_id", caseID).Int("confirmed", tally.Confirmed).Msg("case confirmed by quorum")
		}

	case tally.Decided == tally.Total && tally.Confirmed < s.quorum:
		won, resErr := s.caseRepository.ResolveOpenCase(ctx, caseID, models.CaseRejected, now)
		if resErr != nil {
			return fmt.Errorf("rejecting case: %w", resErr)
		}
		if won {
			log.Info().Int64("case_id", caseID).Int("confirmed", tally.Confirmed).Msg("case rejected, quorum unreachable")
		}
	}

	return nil
}
