package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/memento-project/memento/internal/service"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddContact_Created(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contacts.EXPECT().AddContact(gomock.Any(), int64(42), models.ContactCreateRequest{
		Name:  "Mary",
		Email: "mary@example.com",
	}).Return(models.Contact{ContactID: 7, AccountID: 42, Name: "Mary", Email: "mary@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts",
		jsonBody(`{"name":"Mary","email":"mary@example.com"}`))
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var contact models.Contact
	require.NoError(t, json.Unmarshal([]byte(body), &contact))
	assert.Equal(t, int64(7), contact.ContactID)
}

func TestAddContact_LimitReached(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contacts.EXPECT().AddContact(gomock.Any(), int64(42), gomock.Any()).
		Return(models.Contact{}, service.ErrContactLimitReached)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts",
		jsonBody(`{"name":"One Too Many","email":"six@example.com"}`))
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CONTACT_LIMIT_REACHED", decodeErrorResponse(t, body).Code)
}

func TestAddContact_DuplicateEmail(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contacts.EXPECT().AddContact(gomock.Any(), int64(42), gomock.Any()).
		Return(models.Contact{}, store.ErrContactAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts",
		jsonBody(`{"name":"Mary","email":"mary@example.com"}`))
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONTACT_ALREADY_EXISTS", decodeErrorResponse(t, body).Code)
}

func TestRemoveContact_NoContent(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contacts.EXPECT().RemoveContact(gomock.Any(), int64(42), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts/7", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, _ := doRequest(t, router, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveContact_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contacts.EXPECT().RemoveContact(gomock.Any(), int64(42), int64(7)).
		Return(store.ErrContactNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts/7", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CONTACT_NOT_FOUND", decodeErrorResponse(t, body).Code)
}
