package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak92201/Portfolio/config"
	"github.com/deepak92201/Portfolio/internal/auth"
	"github.com/deepak92201/Portfolio/internal/auth/domain"
	"github.com/deepak92201/Portfolio/internal/auth/service"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *service.TokenManager, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tm, err := service.NewTokenManager(config.JWTConfig{
		Key:           "guard-test-key",
		Issuer:        "portfolio-api",
		Audience:      "portfolio-client",
		ExpiryMinutes: 5,
	})
	require.NoError(t, err)

	calls := 0
	r := gin.New()
	r.DELETE("/thing", RequireRole(tm, domain.RoleAdmin), func(c *gin.Context) {
		calls++
		p, ok := auth.PrincipalFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, p.Username)
	})
	return r, tm, &calls
}

func doDelete(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/thing", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireRole(t *testing.T) {
	r, tm, calls := newGuardedRouter(t)

	adminToken, _, err := tm.Issue("admin", domain.RoleAdmin)
	require.NoError(t, err)
	viewerToken, _, err := tm.Issue("viewer", "Viewer")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantError: "missing authorization token"},
		{name: "wrong scheme", header: "Basic " + adminToken, wantStatus: http.StatusUnauthorized, wantError: "missing authorization token"},
		{name: "bare bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantError: "missing authorization token"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantError: domain.ErrUnauthorized.Error()},
		{name: "other role", header: "Bearer " + viewerToken, wantStatus: http.StatusForbidden, wantError: domain.ErrForbidden.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doDelete(r, tt.header)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, rr.Body.String())
		})
	}
	assert.Zero(t, *calls, "handler must not run for rejected requests")

	rr := doDelete(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "admin", rr.Body.String())
	assert.Equal(t, 1, *calls)
}

type expiredVerifier struct{}

func (expiredVerifier) Verify(string) (*domain.Principal, error) {
	return nil, domain.ErrUnauthorized
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRole(expiredVerifier{}, domain.RoleAdmin), func(c *gin.Context) {
		t.Fatal("handler reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer expired.token.value")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
