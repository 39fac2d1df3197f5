package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

// verificationRepository is the SQL-backed implementation of
// [VerificationRepository].
type verificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewVerificationRepository constructs a [VerificationRepository] backed
// by the provided database connection and logger.
func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	return &verificationRepository{
		DB:     db,
		logger: logger,
	}
}

// GetVerificationByToken resolves a redemption token to its verification.
//
// Returns [ErrVerificationNotFound] for unknown tokens.
func (v *verificationRepository) GetVerificationByToken(ctx context.Context, token string) (models.Verification, error) {
	log := logger.FromContext(ctx)

	var item models.Verification
	err := v.DB.QueryRowContext(ctx, getVerificationByToken, token).Scan(
		&item.VerificationID,
		&item.CaseID,
		&item.ContactID,
		&item.Token,
		&item.Status,
		&item.IssuedAt,
		&item.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Verification{}, ErrVerificationNotFound
		}
		// The token value itself is never logged.
		log.Err(err).
			Str("func", "verificationRepository.GetVerificationByToken").
			Msg("failed to scan verification row")
		return models.Verification{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// DecideVerification moves a PENDING verification to the decided status.
// Returns false without error when the verification already left PENDING,
// so concurrent redemptions of the same token resolve to one winner.
func (v *verificationRepository) DecideVerification(ctx context.Context, verificationID int64, status models.VerificationStatus, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := v.DB.ExecContext(ctx, decideVerification, status, now, verificationID)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.DecideVerification").
			Int64("verification_id", verificationID).
			Str("status", string(status)).
			Msg("failed to execute guarded decision")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return wonGuardedUpdate(result)
}

// TallyVerifications aggregates the decision state of a case's
// verifications.
func (v *verificationRepository) TallyVerifications(ctx context.Context, caseID int64) (models.QuorumTally, error) {
	log := logger.FromContext(ctx)

	var tally models.QuorumTally
	err := v.DB.QueryRowContext(ctx, tallyVerifications, caseID).Scan(
		&tally.Total,
		&tally.Confirmed,
		&tally.Decided,
	)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.TallyVerifications").
			Int64("case_id", caseID).
			Msg("failed to scan verification tally")
		return models.QuorumTally{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tally, nil
}
