package service

import (
	"context"
	"fmt"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/notify"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
)

// capsuleService is the concrete implementation of [CapsuleService].
type capsuleService struct {
	capsuleRepository store.CapsuleRepository
	gateway           notify.Gateway
	logger            *logger.Logger
}

// NewCapsuleService constructs a [CapsuleService] wired to the given
// repository and notification gateway.
func NewCapsuleService(capsuleRepository store.CapsuleRepository, gateway notify.Gateway, logger *logger.Logger) CapsuleService {
	return &capsuleService{
		capsuleRepository: capsuleRepository,
		gateway:           gateway,
		logger:            logger,
	}
}

// CreateCapsule stores a new unreleased capsule for the account.
//
// Returns ErrInvalidDataProvided when the title is empty, the policy is
// unknown, or an ON_DATE capsule lacks a release moment.
func (s *capsuleService) CreateCapsule(ctx context.Context, accountID int64, req models.CapsuleCreateRequest) (models.Capsule, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || !req.ReleasePolicy.Valid() {
		log.Error().Int64("account_id", accountID).Msg("invalid capsule data provided")
		return models.Capsule{}, ErrInvalidDataProvided
	}
	if req.ReleasePolicy == models.ReleaseOnDate && req.ReleaseAt == nil {
		return models.Capsule{}, ErrInvalidDataProvided
	}

	capsule, err := s.capsuleRepository.CreateCapsule(ctx, models.Capsule{
		AccountID:        accountID,
		Title:            req.Title,
		Message:          req.Message,
		MediaURL:         req.MediaURL,
		ReleasePolicy:    req.ReleasePolicy,
		ReleaseAt:        req.ReleaseAt,
		RecipientName:    req.RecipientName,
		RecipientContact: req.RecipientContact,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		return models.Capsule{}, fmt.Errorf("creating capsule: %w", err)
	}

	return capsule, nil
}

// GetCapsule loads one capsule scoped to its owner.
func (s *capsuleService) GetCapsule(ctx context.Context, accountID int64, capsuleID int64) (models.Capsule, error) {
	capsule, err := s.capsuleRepository.GetCapsule(ctx, capsuleID, accountID)
	if err != nil {
		return models.Capsule{}, fmt.Errorf("loading capsule: %w", err)
	}

	return capsule, nil
}

// ListCapsules returns every capsule of the account, newest first.
func (s *capsuleService) ListCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error) {
	capsules, err := s.capsuleRepository.ListCapsules(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing capsules: %w", err)
	}

	return capsules, nil
}

// UpdateCapsule applies a partial edit to an unreleased capsule and
// returns the updated record.
//
// The edit is validated against the capsule's effective state after the
// merge: an ON_DATE capsule must end up with a release moment.
//
// Returns store.ErrCapsuleReleased for released capsules and
// store.ErrCapsuleNotFound for foreign or missing ones.
func (s *capsuleService) UpdateCapsule(ctx context.Context, accountID int64, capsuleID int64, req models.CapsuleUpdateRequest) (models.Capsule, error) {
	existing, err := s.capsuleRepository.GetCapsule(ctx, capsuleID, accountID)
	if err != nil {
		return models.Capsule{}, fmt.Errorf("loading capsule for update: %w", err)
	}

	effectivePolicy := existing.ReleasePolicy
	if req.ReleasePolicy != nil {
		effectivePolicy = *req.ReleasePolicy
	}
	effectiveReleaseAt := existing.ReleaseAt
	if req.ReleaseAt != nil {
		effectiveReleaseAt = req.ReleaseAt
	}

	if !effectivePolicy.Valid() {
		return models.Capsule{}, ErrInvalidDataProvided
	}
	if effectivePolicy == models.ReleaseOnDate && effectiveReleaseAt == nil {
		return models.Capsule{}, ErrInvalidDataProvided
	}
	if req.Title != nil && *req.Title == "" {
		return models.Capsule{}, ErrInvalidDataProvided
	}

	if err = s.capsuleRepository.UpdateCapsule(ctx, capsuleID, accountID, req, time.Now()); err != nil {
		return models.Capsule{}, fmt.Errorf("updating capsule: %w", err)
	}

	return s.GetCapsule(ctx, accountID, capsuleID)
}

// DeleteCapsule removes an unreleased capsule.
//
// Returns store.ErrCapsuleReleased for released capsules and
// store.ErrCapsuleNotFound for foreign or missing ones.
func (s *capsuleService) DeleteCapsule(ctx context.Context, accountID int64, capsuleID int64) error {
	if err := s.capsuleRepository.DeleteCapsule(ctx, capsuleID, accountID); err != nil {
		return fmt.Errorf("deleting capsule: %w", err)
	}

	return nil
}

// ReleaseEligibleCapsules releases every capsule eligible at now:
// IMMEDIATE capsules, ON_DATE capsules whose moment has passed, and
// ON_DEATH capsules whose owning account has a FINAL case. Each release
// goes through the guarded flip, and only guard winners produce a
// recipient notice.
func (s *capsuleService) ReleaseEligibleCapsules(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.capsuleRepository.ListDueCapsules(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("listing due capsules: %w", err)
	}

	onDeath, err := s.capsuleRepository.ListDeathReleasableCapsules(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing death-releasable capsules: %w", err)
	}

	released := 0
	for _, capsule := range append(due, onDeath...) {
		won, relErr := s.capsuleRepository.ReleaseCapsule(ctx, capsule.CapsuleID, now)
		if relErr != nil {
			log.Err(relErr).Int64("capsule_id", capsule.CapsuleID).Msg("failed to release capsule")
			continue
		}
		if !won {
			continue
		}

		released++
		log.Info().
			Int64("capsule_id", capsule.CapsuleID).
			Str("release_policy", string(capsule.ReleasePolicy)).
			Msg("capsule released")

		if capsule.RecipientContact == "" {
			continue
		}
		capsule := capsule
		notify.Dispatch(s.logger, "capsule-release", func(ctx context.Context) error {
			return s.gateway.SendReleaseNotice(ctx, capsule)
		})
	}

	return released, nil
}
