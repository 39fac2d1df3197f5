package store

import (
	"context"
	"fmt"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateContact registers a trusted contact and returns it with the
// generated identifier.
//
// Returns [ErrContactAlreadyExists] when the account already has a
// contact with the same email.
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	err := c.DB.QueryRowContext(ctx, createContact,
		contact.AccountID,
		contact.Name,
		contact.Relation,
		contact.Email,
		contact.Phone,
		contact.CreatedAt,
	).Scan(&contact.ContactID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, ErrContactAlreadyExists
		}
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Int64("account_id", contact.AccountID).
			Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return contact, nil
}

// ListContacts returns the account's trusted contacts in registration order.
func (c *contactRepository) ListContacts(ctx context.Context, accountID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listContactsByAccount, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.ListContacts").
			Int64("account_id", accountID).
			Msg("failed to execute contact listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Contact, 0, 8)

	for rows.Next() {
		var item models.Contact

		scanErr := rows.Scan(
			&item.ContactID,
			&item.AccountID,
			&item.Name,
			&item.Relation,
			&item.Email,
			&item.Phone,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactRepository.ListContacts").
				Int64("account_id", accountID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactRepository.ListContacts").
			Int64("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// CountContacts returns how many trusted contacts the account has.
func (c *contactRepository) CountContacts(ctx context.Context, accountID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := c.DB.QueryRowContext(ctx, countContactsByAccount, accountID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.CountContacts").
			Int64("account_id", accountID).
			Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// DeleteContact removes a contact scoped to its owner.
//
// Returns [ErrContactNotFound] when the id does not exist or belongs to a
// different account.
func (c *contactRepository) DeleteContact(ctx context.Context, contactID int64, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteContact, contactID, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContact").
			Int64("contact_id", contactID).
			Msg("failed to execute contact delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	won, err := wonGuardedUpdate(result)
	if err != nil {
		return err
	}
	if !won {
		return ErrContactNotFound
	}

	return nil
}
