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

// capsuleRepository is the SQL-backed implementation of [CapsuleRepository].
//
// The released flag is monotonic. Every mutation carries a released=FALSE
// guard so a capsule that has been released, by any path, rejects edits,
// deletes and repeat releases at the statement level.
type capsuleRepository struct {
	*DB
	logger *logger.Logger
}

// NewCapsuleRepository constructs a [CapsuleRepository] backed by the
// provided database connection and logger.
func NewCapsuleRepository(db *DB, logger *logger.Logger) CapsuleRepository {
	return &capsuleRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCapsule inserts a new unreleased capsule and returns it with the
// generated identifier.
func (c *capsuleRepository) CreateCapsule(ctx context.Context, capsule models.Capsule) (models.Capsule, error) {
	log := logger.FromContext(ctx)

	err := c.DB.QueryRowContext(ctx, createCapsule,
		capsule.AccountID,
		capsule.Title,
		capsule.Message,
		capsule.MediaURL,
		capsule.ReleasePolicy,
		capsule.ReleaseAt,
		capsule.RecipientName,
		capsule.RecipientContact,
		capsule.CreatedAt,
	).Scan(&capsule.CapsuleID)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.CreateCapsule").
			Int64("account_id", capsule.AccountID).
			Msg("failed to insert capsule")
		return models.Capsule{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	capsule.Released = false

	return capsule, nil
}

// GetCapsule loads one capsule scoped to its owner.
//
// Returns [ErrCapsuleNotFound] when the id does not exist or belongs to a
// different account.
func (c *capsuleRepository) GetCapsule(ctx context.Context, capsuleID int64, accountID int64) (models.Capsule, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, getCapsuleByID, capsuleID, accountID)

	capsule, err := scanCapsule(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Capsule{}, ErrCapsuleNotFound
		}
		log.Err(err).
			Str("func", "capsuleRepository.GetCapsule").
			Int64("capsule_id", capsuleID).
			Int64("account_id", accountID).
			Msg("failed to scan capsule row")
		return models.Capsule{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return capsule, nil
}

// ListCapsules returns every capsule of the account, newest first.
func (c *capsuleRepository) ListCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listCapsulesByAccount, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ListCapsules").
			Int64("account_id", accountID).
			Msg("failed to execute capsule listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCapsules(rows)
}

// UpdateCapsule applies a partial edit to an unreleased capsule.
//
// Returns [ErrCapsuleReleased] when the capsule exists but has been
// released, and [ErrCapsuleNotFound] when it does not exist.
func (c *capsuleRepository) UpdateCapsule(ctx context.Context, capsuleID int64, accountID int64, upd models.CapsuleUpdateRequest, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCapsuleQuery(capsuleID, accountID, upd, now)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.UpdateCapsule").
			Int64("capsule_id", capsuleID).
			Msg("failed to build capsule update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.UpdateCapsule").
			Int64("capsule_id", capsuleID).
			Msg("failed to execute capsule update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	won, err := wonGuardedUpdate(result)
	if err != nil {
		return err
	}
	if won {
		return nil
	}

	return c.immutableOrMissing(ctx, capsuleID, accountID)
}

// DeleteCapsule removes an unreleased capsule.
//
// Returns [ErrCapsuleReleased] when the capsule exists but has been
// released, and [ErrCapsuleNotFound] when it does not exist.
func (c *capsuleRepository) DeleteCapsule(ctx context.Context, capsuleID int64, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteCapsule, capsuleID, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.DeleteCapsule").
			Int64("capsule_id", capsuleID).
			Msg("failed to execute capsule delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	won, err := wonGuardedUpdate(result)
	if err != nil {
		return err
	}
	if won {
		return nil
	}

	return c.immutableOrMissing(ctx, capsuleID, accountID)
}

// ReleaseCapsule flips released false -> true and stamps released_at.
// Returns false without error when another sweep released the capsule
// first, so duplicate notices are never sent.
func (c *capsuleRepository) ReleaseCapsule(ctx context.Context, capsuleID int64, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, releaseCapsule, now, capsuleID)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ReleaseCapsule").
			Int64("capsule_id", capsuleID).
			Msg("failed to execute guarded release")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return wonGuardedUpdate(result)
}

// ListDueCapsules returns unreleased capsules eligible by clock at now:
// every IMMEDIATE capsule and every ON_DATE capsule whose release moment
// has passed.
func (c *capsuleRepository) ListDueCapsules(ctx context.Context, now time.Time) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDueCapsulesQuery(now)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ListDueCapsules").
			Msg("failed to build due-capsules query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ListDueCapsules").
			Msg("failed to execute due-capsules query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCapsules(rows)
}

// ListDeathReleasableCapsules returns unreleased ON_DEATH capsules whose
// owning account has a FINAL case.
func (c *capsuleRepository) ListDeathReleasableCapsules(ctx context.Context) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listDeathReleasableCapsules)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ListDeathReleasableCapsules").
			Msg("failed to execute death-releasable query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCapsules(rows)
}

// ListOnDeathCapsules returns the account's unreleased ON_DEATH capsules.
func (c *capsuleRepository) ListOnDeathCapsules(ctx context.Context, accountID int64) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listOnDeathCapsulesByAccount, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "capsuleRepository.ListOnDeathCapsules").
			Int64("account_id", accountID).
			Msg("failed to execute on-death capsule query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCapsules(rows)
}

// immutableOrMissing distinguishes the two reasons a guarded capsule
// mutation can affect zero rows.
func (c *capsuleRepository) immutableOrMissing(ctx context.Context, capsuleID int64, accountID int64) error {
	if _, err := c.GetCapsule(ctx, capsuleID, accountID); err != nil {
		return err
	}

	return ErrCapsuleReleased
}

func scanCapsule(scan func(dest ...any) error) (models.Capsule, error) {
	var item models.Capsule

	err := scan(
		&item.CapsuleID,
		&item.AccountID,
		&item.Title,
		&item.Message,
		&item.MediaURL,
		&item.ReleasePolicy,
		&item.ReleaseAt,
		&item.RecipientName,
		&item.RecipientContact,
		&item.Released,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.ReleasedAt,
	)

	return item, err
}

func collectCapsules(rows *sql.Rows) ([]models.Capsule, error) {
	results := make([]models.Capsule, 0, 16)

	for rows.Next() {
		item, scanErr := scanCapsule(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
