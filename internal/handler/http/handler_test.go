package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/mock"
	"github.com/memento-project/memento/internal/service"
	"github.com/memento-project/memento/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "memento-test"
)

// serviceMocks bundles one gomock mock per service interface.
type serviceMocks struct {
	cases         *mock.MockCaseService
	verifications *mock.MockVerificationService
	capsules      *mock.MockCapsuleService
	contacts      *mock.MockContactService
}

// newTestRouter builds a full router on top of mocked services.
func newTestRouter(t *testing.T) (*chi.Mux, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		cases:         mock.NewMockCaseService(ctrl),
		verifications: mock.NewMockVerificationService(ctrl),
		capsules:      mock.NewMockCapsuleService(ctrl),
		contacts:      mock.NewMockContactService(ctrl),
	}

	services := &service.Services{
		CaseService:         mocks.cases,
		VerificationService: mocks.verifications,
		CapsuleService:      mocks.capsules,
		ContactService:      mocks.contacts,
	}
	app := config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}

	h := NewHandler(services, app, logger.Nop())
	return h.Init(), mocks
}

// bearerToken mints a valid Authorization header value for the account.
func bearerToken(t *testing.T, accountID int64, admin bool) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(testIssuer, accountID, admin, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// doRequest performs the request against the router and returns the
// recorded response with its body read out.
func doRequest(t *testing.T, router *chi.Mux, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec, string(body)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.verifications.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(redeemOKResponse(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verifications/redeem", jsonBody(`{"token":"abc"}`))
	rec, _ := doRequest(t, router, req)

	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.verifications.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(redeemOKResponse(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verifications/redeem", jsonBody(`{"token":"abc"}`))
	req.Header.Set("X-Trace-ID", "trace-42")
	rec, _ := doRequest(t, router, req)

	require.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}
