package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

// willRepository is the SQL-backed implementation of [WillRepository].
type willRepository struct {
	*DB
	logger *logger.Logger
}

// NewWillRepository constructs a [WillRepository] backed by the provided
// database connection and logger.
func NewWillRepository(db *DB, logger *logger.Logger) WillRepository {
	return &willRepository{
		DB:     db,
		logger: logger,
	}
}

// GetWillDocument loads the stored-will pointer of an account.
//
// Returns [ErrWillNotFound] when the account has no will record; callers
// treat that as "nothing to announce", not a failure.
func (w *willRepository) GetWillDocument(ctx context.Context, accountID int64) (models.WillDocument, error) {
	log := logger.FromContext(ctx)

	var doc models.WillDocument
	err := w.DB.QueryRowContext(ctx, getWillByAccount, accountID).Scan(
		&doc.AccountID,
		&doc.StorageLocation,
		&doc.FileURL,
		&doc.BeneficiaryEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WillDocument{}, ErrWillNotFound
		}
		log.Err(err).
			Str("func", "willRepository.GetWillDocument").
			Int64("account_id", accountID).
			Msg("failed to scan will document row")
		return models.WillDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}
