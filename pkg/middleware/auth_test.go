package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

func newTestAuthenticator() authenticating.Authenticator {
	return authenticating.NewService(&config.Config{SecretKey: "chave_de_teste"})
}

func claimsEchoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
		if ok {
			w.Header().Set("X-User-Name", claims.UserName)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	authenticator := newTestAuthenticator()

	validToken, err := authenticator.GenerateToken(7, "ana.souza", RoleSupervisor)
	require.NoError(t, err)

	otherSigner := authenticating.NewService(&config.Config{SecretKey: "outra_chave"})
	foreignToken, err := otherSigner.GenerateToken(7, "ana.souza", RoleSupervisor)
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		path         string
		header       string
		wantStatus   int
		wantCode     string
		wantUserName string
	}{
		{
			name:       "Healthcheck é público",
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Métricas são públicas",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Preflight CORS não exige token",
			method:     http.MethodOptions,
			path:       "/v1/reports/seller-performance",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem header Authorization",
			method:     http.MethodPost,
			path:       "/v1/reports/seller-performance",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Header sem prefixo Bearer",
			method:     http.MethodPost,
			path:       "/v1/reports/seller-performance",
			header:     validToken,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Token assinado com outra chave",
			method:     http.MethodPost,
			path:       "/v1/reports/seller-performance",
			header:     "Bearer " + foreignToken,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:         "Token válido injeta claims no contexto",
			method:       http.MethodPost,
			path:         "/v1/reports/seller-performance",
			header:       "Bearer " + validToken,
			wantStatus:   http.StatusOK,
			wantUserName: "ana.souza",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator)(claimsEchoHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
			assert.Equal(t, tt.wantUserName, rec.Header().Get("X-User-Name"))
		})
	}
}
