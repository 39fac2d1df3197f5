package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/memento-project/memento/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, err := utils.GenerateJWTToken(testIssuer, 42, false, time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	wrongKey, err := utils.GenerateJWTToken(testIssuer, 42, false, time.Hour, "other-key")
	require.NoError(t, err)

	wrongIssuer, err := utils.GenerateJWTToken("someone-else", 42, false, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "malformed header", header: "Bearer"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "expired token", header: "Bearer " + expired.SignedString},
		{name: "wrong sign key", header: "Bearer " + wrongKey.SignedString},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer.SignedString},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/api/capsules", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec, _ := doRequest(t, router, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_AdminClaimFlowsToContext(t *testing.T) {
	router, mocks := newTestRouter(t)

	// An admin token passes both the auth and the adminOnly gates.
	mocks.cases.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/cases", nil)
	req.Header.Set("Authorization", bearerToken(t, 1, true))
	rec, _ := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
