package service

import (
	"context"
	"testing"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactService(contacts *mockContactRepository) *contactService {
	if contacts == nil {
		contacts = &mockContactRepository{}
	}

	return &contactService{
		contactRepository: contacts,
		logger:            logger.Nop(),
	}
}

func TestContactService_AddContact_Success(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{
		countContactsFn: func(_ context.Context, accountID int64) (int, error) {
			assert.Equal(t, int64(42), accountID)
			return 1, nil
		},
		createContactFn: func(_ context.Context, c models.Contact) (models.Contact, error) {
			assert.Equal(t, int64(42), c.AccountID)
			assert.False(t, c.CreatedAt.IsZero())
			c.ContactID = 7
			return c, nil
		},
	})

	contact, err := svc.AddContact(context.Background(), 42, models.ContactCreateRequest{
		Name:     "Mary",
		Relation: "daughter",
		Email:    "mary@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), contact.ContactID)
}

func TestContactService_AddContact_Invalid(t *testing.T) {
	svc := newTestContactService(nil)

	tests := []struct {
		name string
		req  models.ContactCreateRequest
	}{
		{name: "missing name", req: models.ContactCreateRequest{Email: "mary@example.com"}},
		{name: "malformed email", req: models.ContactCreateRequest{Name: "Mary", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddContact(context.Background(), 42, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestContactService_AddContact_LimitReached(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{
		countContactsFn: func(_ context.Context, _ int64) (int, error) {
			return maxTrustedContacts, nil
		},
		createContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			t.Fatal("contact must not be created past the limit")
			return models.Contact{}, nil
		},
	})

	_, err := svc.AddContact(context.Background(), 42, models.ContactCreateRequest{
		Name:  "One Too Many",
		Email: "six@example.com",
	})
	assert.ErrorIs(t, err, ErrContactLimitReached)
}

func TestContactService_AddContact_DuplicateEmail(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{
		createContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			return models.Contact{}, store.ErrContactAlreadyExists
		},
	})

	_, err := svc.AddContact(context.Background(), 42, models.ContactCreateRequest{
		Name:  "Mary",
		Email: "mary@example.com",
	})
	assert.ErrorIs(t, err, store.ErrContactAlreadyExists)
}

func TestContactService_RemoveContact_NotFound(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{
		deleteContactFn: func(_ context.Context, contactID, accountID int64) error {
			assert.Equal(t, int64(7), contactID)
			assert.Equal(t, int64(42), accountID)
			return store.ErrContactNotFound
		},
	})

	err := svc.RemoveContact(context.Background(), 42, 7)
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_ListContacts(t *testing.T) {
	svc := newTestContactService(&mockContactRepository{
		listContactsFn: func(_ context.Context, accountID int64) ([]models.Contact, error) {
			return []models.Contact{{ContactID: 1, AccountID: accountID}}, nil
		},
	})

	contacts, err := svc.ListContacts(context.Background(), 42)

	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}
