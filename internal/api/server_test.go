package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapmocks "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/mocks"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/usecases/authenticating"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type noopStatsSync struct{}

func (noopStatsSync) TriggerManualSync(context.Context) bool { return true }
func (noopStatsSync) GetStatus() map[string]any              { return map[string]any{} }

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockReporter, authenticating.Authenticator) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	client := snapmocks.NewMockClient(ctrl)

	cfg := &config.Config{
		SecretKey: "test-secret",
		Server:    config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Snap:      config.Snap{OrgID: "org-1"},
	}
	auth := authenticating.NewService(cfg)
	tokens := snapclient.NewTokenManager(cfg, client)

	return NewHandler(cfg, reporter, auth, client, tokens, noopStatsSync{}), reporter, auth
}

func TestNewHandler_Auth(t *testing.T) {
	h, reporter, auth := newTestHandler(t)

	token, err := auth.GenerateToken("bi-pipeline", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		authorization  string
		setup          func()
		expectedStatus int
	}{
		{
			name:           "Healthcheck é público",
			path:           "/healthcheck",
			setup:          func() {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header Authorization",
			path:           "/v1/adaccounts",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			path:           "/v1/adaccounts",
			authorization:  token,
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token válido",
			path:          "/v1/adaccounts",
			authorization: "Bearer " + token,
			setup: func() {
				reporter.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{"acc-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Callback OAuth dispensa JWT",
			path:           "/v1/oauth/callback?state=unknown&code=c",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNewHandler_Cors(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/adaccounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/adaccounts", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
