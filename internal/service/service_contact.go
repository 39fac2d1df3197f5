package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
)

// maxTrustedContacts caps how many attestors one account may register.
const maxTrustedContacts = 5

// contactService is the concrete implementation of [ContactService].
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

// NewContactService constructs a [ContactService] wired to the given
// repository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// AddContact registers a trusted contact for the account.
//
// Returns:
//   - ErrInvalidDataProvided when name or email is missing.
//   - ErrContactLimitReached when the account already has the maximum
//     number of contacts.
//   - store.ErrContactAlreadyExists for a duplicate email.
func (s *contactService) AddContact(ctx context.Context, accountID int64, req models.ContactCreateRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || !strings.Contains(req.Email, "@") {
		log.Error().Int64("account_id", accountID).Msg("invalid contact data provided")
		return models.Contact{}, ErrInvalidDataProvided
	}

	count, err := s.contactRepository.CountContacts(ctx, accountID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("counting contacts: %w", err)
	}
	if count >= maxTrustedContacts {
		return models.Contact{}, ErrContactLimitReached
	}

	contact, err := s.contactRepository.CreateContact(ctx, models.Contact{
		AccountID: accountID,
		Name:      req.Name,
		Relation:  req.Relation,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return models.Contact{}, fmt.Errorf("creating contact: %w", err)
	}

	return contact, nil
}

// ListContacts returns the account's trusted contacts.
func (s *contactService) ListContacts(ctx context.Context, accountID int64) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return contacts, nil
}

// RemoveContact deletes a trusted contact owned by the account.
//
// Returns store.ErrContactNotFound for foreign or missing contacts.
func (s *contactService) RemoveContact(ctx context.Context, accountID int64, contactID int64) error {
	if err := s.contactRepository.DeleteContact(ctx, contactID, accountID); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}
