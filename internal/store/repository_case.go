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

// caseRepository is the SQL-backed implementation of [CaseRepository].
//
// Lifecycle transitions never read-modify-write: every state change is a
// single conditional UPDATE whose WHERE clause names the expected current
// status, and the affected row count decides which caller won. Sweepers,
// redemption handlers and owner cancellation can therefore race freely
// without locks.
type caseRepository struct {
	*DB
	logger *logger.Logger
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	return &caseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCaseWithVerifications inserts a new OPEN case together with its
// whole invitation batch in one transaction, so a case never exists with
// a partial set of tokens. The partial unique index on active cases turns
// a concurrent duplicate open into [ErrActiveCaseExists].
func (c *caseRepository) CreateCaseWithVerifications(ctx context.Context, newCase models.Case, verifications []models.Verification) (models.Case, []models.Verification, error) {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.CreateCaseWithVerifications").
			Msg("failed to begin transaction")
		return models.Case{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, createCase,
		newCase.AccountID,
		newCase.ReporterName,
		newCase.ReporterContact,
		newCase.Relation,
		newCase.Message,
		newCase.Status,
		newCase.OpenedAt,
	).Scan(&newCase.CaseID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Case{}, nil, ErrActiveCaseExists
		}
		log.Err(err).
			Str("func", "caseRepository.CreateCaseWithVerifications").
			Int64("account_id", newCase.AccountID).
			Msg("failed to insert case")
		return models.Case{}, nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i := range verifications {
		verifications[i].CaseID = newCase.CaseID
		insertErr := tx.QueryRowContext(ctx, createVerification,
			verifications[i].CaseID,
			verifications[i].ContactID,
			verifications[i].Token,
			verifications[i].IssuedAt,
		).Scan(&verifications[i].VerificationID)
		if insertErr != nil {
			log.Err(insertErr).
				Str("func", "caseRepository.CreateCaseWithVerifications").
				Int64("case_id", verifications[i].CaseID).
				Int("index", i).
				Msg("failed to insert verification")
			return models.Case{}, nil, fmt.Errorf("%w: %w", ErrExecutingStatement, insertErr)
		}
		verifications[i].Status = models.VerificationPending
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "caseRepository.CreateCaseWithVerifications").
			Msg("failed to commit transaction")
		return models.Case{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return newCase, verifications, nil
}

// GetCase loads one case by identifier.
//
// Returns [ErrCaseNotFound] when the identifier matches nothing.
func (c *caseRepository) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, getCaseByID, caseID)

	foundCase, err := scanCase(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Case{}, ErrCaseNotFound
		}
		log.Err(err).
			Str("func", "caseRepository.GetCase").
			Int64("case_id", caseID).
			Msg("failed to scan case row")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundCase, nil
}

// ListCases returns cases matching the filter, newest first.
func (c *caseRepository) ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCasesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.ListCases").
			Msg("failed to build case listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.ListCases").
			Msg("failed to execute case listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCases(rows)
}

// HasActiveCase reports whether the account has a case in OPEN or
// CONFIRMED state.
func (c *caseRepository) HasActiveCase(ctx context.Context, accountID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	err := c.DB.QueryRowContext(ctx, countActiveCasesForAccount, accountID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.HasActiveCase").
			Int64("account_id", accountID).
			Msg("failed to count active cases")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// ResolveOpenCase moves an OPEN case to next and stamps resolved_at.
// Returns false without error when the case already left OPEN, which
// makes concurrent quorum evaluations idempotent.
func (c *caseRepository) ResolveOpenCase(ctx context.Context, caseID int64, next models.CaseStatus, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, resolveOpenCase, next, now, caseID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.ResolveOpenCase").
			Int64("case_id", caseID).
			Str("next_status", string(next)).
			Msg("failed to execute guarded resolve")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return wonGuardedUpdate(result)
}

// FinalizeCase moves a CONFIRMED case to FINAL. Returns false without
// error when the case is no longer CONFIRMED (canceled or already FINAL).
func (c *caseRepository) FinalizeCase(ctx context.Context, caseID int64, note string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, finalizeConfirmedCase, now, note, caseID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.FinalizeCase").
			Int64("case_id", caseID).
			Msg("failed to execute guarded finalize")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return wonGuardedUpdate(result)
}

// CancelActiveCasesByOwner moves every OPEN and CONFIRMED case of the
// account to CANCELED_BY_OWNER and returns the number of rows moved.
// Zero is a valid outcome and is left for the caller to interpret.
func (c *caseRepository) CancelActiveCasesByOwner(ctx context.Context, accountID int64, note string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, cancelActiveCasesByOwner, now, note, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.CancelActiveCasesByOwner").
			Int64("account_id", accountID).
			Msg("failed to execute owner cancellation")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.CancelActiveCasesByOwner").
			Int64("account_id", accountID).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// AdminSetStatus forces a case into the given status and appends note.
//
// Returns [ErrCaseFinalized] when the case is FINAL and [ErrCaseNotFound]
// when it does not exist.
func (c *caseRepository) AdminSetStatus(ctx context.Context, caseID int64, status models.CaseStatus, note string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, adminUpdateCase, status, status, now, note, caseID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.AdminSetStatus").
			Int64("case_id", caseID).
			Str("status", string(status)).
			Msg("failed to execute admin update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	won, err := wonGuardedUpdate(result)
	if err != nil {
		return err
	}
	if won {
		return nil
	}

	// Zero rows: either the case is FINAL or it does not exist.
	if _, getErr := c.GetCase(ctx, caseID); getErr != nil {
		return getErr
	}

	return ErrCaseFinalized
}

// ListEscalatableCases returns CONFIRMED cases whose confirmation moment
// is at or before cutoff, i.e. cases whose waiting period has elapsed.
func (c *caseRepository) ListEscalatableCases(ctx context.Context, cutoff time.Time) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listEscalatableCases, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.ListEscalatableCases").
			Time("cutoff", cutoff).
			Msg("failed to execute escalation query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectCases(rows)
}

func scanCase(scan func(dest ...any) error) (models.Case, error) {
	var item models.Case

	err := scan(
		&item.CaseID,
		&item.AccountID,
		&item.ReporterName,
		&item.ReporterContact,
		&item.Relation,
		&item.Message,
		&item.Status,
		&item.AdminNote,
		&item.OpenedAt,
		&item.ResolvedAt,
		&item.FinalizedAt,
	)

	return item, err
}

func collectCases(rows *sql.Rows) ([]models.Case, error) {
	results := make([]models.Case, 0, 16)

	for rows.Next() {
		item, scanErr := scanCase(rows.Scan)
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

func wonGuardedUpdate(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
