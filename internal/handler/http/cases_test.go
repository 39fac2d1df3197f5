package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/memento-project/memento/internal/service"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func redeemOKResponse() models.RedeemResponse {
	return models.RedeemResponse{CaseID: 10, CaseStatus: models.CaseOpen, Decision: models.DecisionConfirm}
}

func decodeErrorResponse(t *testing.T, body string) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestOpenCase_Created(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().OpenCase(gomock.Any(), models.OpenCaseRequest{
		TargetUsername:  "lazarus",
		ReporterName:    "Martha",
		ReporterContact: "martha@example.com",
	}).Return(models.OpenCaseResponse{CaseID: 10, InvitedContacts: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cases",
		jsonBody(`{"target_username":"lazarus","reporter_name":"Martha","reporter_contact":"martha@example.com"}`))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.OpenCaseResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(10), resp.CaseID)
	assert.Equal(t, 3, resp.InvitedContacts)
}

func TestOpenCase_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", jsonBody(`{broken`))
	rec, _ := doRequest(t, router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenCase_NoAttestors(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().OpenCase(gomock.Any(), gomock.Any()).
		Return(models.OpenCaseResponse{}, service.ErrInsufficientAttestors)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", jsonBody(`{"target_username":"lazarus"}`))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INSUFFICIENT_ATTESTORS", decodeErrorResponse(t, body).Code)
}

func TestOpenCase_AlreadyOpen(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().OpenCase(gomock.Any(), gomock.Any()).
		Return(models.OpenCaseResponse{}, service.ErrCaseAlreadyOpen)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", jsonBody(`{"target_username":"lazarus"}`))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CASE_ALREADY_OPEN", decodeErrorResponse(t, body).Code)
}

func TestOpenCase_RetryableStorageFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	driverErr := fmt.Errorf("creating case: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mocks.cases.EXPECT().OpenCase(gomock.Any(), gomock.Any()).
		Return(models.OpenCaseResponse{}, driverErr)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", jsonBody(`{"target_username":"lazarus"}`))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORAGE_UNAVAILABLE", decodeErrorResponse(t, body).Code)
}

func TestRedeemVerification_OK(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.verifications.EXPECT().Redeem(gomock.Any(), models.RedeemRequest{Token: "abc", Decision: models.DecisionReject}).
		Return(models.RedeemResponse{CaseID: 10, CaseStatus: models.CaseOpen, Decision: models.DecisionReject}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verifications/redeem",
		jsonBody(`{"token":"abc","decision":"REJECT"}`))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RedeemResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, models.DecisionReject, resp.Decision)
}

func TestRedeemVerification_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"unknown token", store.ErrVerificationNotFound, http.StatusNotFound, "TOKEN_NOT_FOUND"},
		{"already decided", service.ErrAlreadyDecided, http.StatusConflict, "ALREADY_DECIDED"},
		{"expired", service.ErrTokenExpired, http.StatusGone, "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.verifications.EXPECT().Redeem(gomock.Any(), gomock.Any()).
				Return(models.RedeemResponse{}, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/verifications/redeem", jsonBody(`{"token":"abc"}`))
			rec, body := doRequest(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorResponse(t, body).Code)
		})
	}
}

func TestCancelCases_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/cancel", nil)
	rec, _ := doRequest(t, router, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelCases_OK(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().CancelActiveCases(gomock.Any(), int64(42), models.CancelCaseRequest{Reason: "still here"}).
		Return(models.CancelCaseResponse{CanceledCount: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/cancel", jsonBody(`{"reason":"still here"}`))
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CancelCaseResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.CanceledCount)
}

func TestCancelCases_EmptyBody(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().CancelActiveCases(gomock.Any(), int64(42), models.CancelCaseRequest{}).
		Return(models.CancelCaseResponse{CanceledCount: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/cancel", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, _ := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelCases_NothingToCancel(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.cases.EXPECT().CancelActiveCases(gomock.Any(), int64(42), gomock.Any()).
		Return(models.CancelCaseResponse{}, service.ErrNoCancelableCase)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/cancel", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, false))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_CANCELABLE_CASE", decodeErrorResponse(t, body).Code)
}
