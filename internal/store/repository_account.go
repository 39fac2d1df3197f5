package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAccountByUsername resolves the public handle named by an open-case
// request to an account record.
//
// Returns [ErrAccountNotFound] when no account carries the username.
func (a *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, findAccountByUsername, username)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).
			Str("func", "accountRepository.FindAccountByUsername").
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// GetAccountByID loads the account record for an internal identifier.
//
// Returns [ErrAccountNotFound] when the identifier matches nothing.
func (a *accountRepository) GetAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, getAccountByID, accountID)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).
			Str("func", "accountRepository.GetAccountByID").
			Int64("account_id", accountID).
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account

	err := row.Scan(
		&account.AccountID,
		&account.Username,
		&account.Name,
		&account.IsAdmin,
		&account.CreatedAt,
	)

	return account, err
}
