package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak92201/Portfolio/config"
	apimw "github.com/deepak92201/Portfolio/internal/api/http/middleware"
	authdomain "github.com/deepak92201/Portfolio/internal/auth/domain"
	authmw "github.com/deepak92201/Portfolio/internal/auth/middleware"
	authservice "github.com/deepak92201/Portfolio/internal/auth/service"
	"github.com/deepak92201/Portfolio/internal/projects/domain"
	"github.com/deepak92201/Portfolio/internal/projects/repository/repositorytest"
	"github.com/deepak92201/Portfolio/internal/projects/service"
)

const validBody = `{"title":"Portfolio","description":"Personal site","techStack":"Go, React","githubUrl":"https://github.com/me/portfolio","liveUrl":"https://me.dev"}`

type fixture struct {
	router *gin.Engine
	repo   *repositorytest.ProjectStore
	token  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tm, err := authservice.NewTokenManager(config.JWTConfig{
		Key:           "projects-test-key",
		Issuer:        "portfolio-api",
		Audience:      "portfolio-client",
		ExpiryMinutes: 5,
	})
	require.NoError(t, err)
	token, _, err := tm.Issue("admin", authdomain.RoleAdmin)
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	repo := repositorytest.NewProjectStore()

	r := gin.New()
	New(service.NewProjectService(repo), logger).
		Register(r.Group("/api/projects"), authmw.RequireRole(tm, authdomain.RoleAdmin))

	return &fixture{router: r, repo: repo, token: token}
}

func (f *fixture) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeProject(t *testing.T, rr *httptest.ResponseRecorder) domain.Project {
	t.Helper()
	var p domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	return p
}

func TestCreateAndGet(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/api/projects", validBody, true)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeProject(t, rr)
	assert.Equal(t, "/api/projects/1", rr.Header().Get("Location"))
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rr = f.do(http.MethodGet, "/api/projects/1", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeProject(t, rr)
	assert.Equal(t, "Portfolio", got.Title)
	assert.Equal(t, "https://me.dev", got.LiveURL)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, key := range []string{"id", "title", "description", "techStack", "githubUrl", "liveUrl", "createdAt"} {
		assert.Contains(t, raw, key)
	}
}

func TestListEmptyAndOrdered(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/api/projects", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	f.do(http.MethodPost, "/api/projects", validBody, true)
	f.do(http.MethodPost, "/api/projects", strings.Replace(validBody, "Portfolio", "Second", 1), true)

	rr = f.do(http.MethodGet, "/api/projects", "", false)
	var items []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Title)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodPost, "/api/projects", validBody, true)
	before, _ := f.repo.Get(context.Background(), 1)

	updated := strings.Replace(validBody, "Personal site", "Rewritten", 1)
	rr := f.do(http.MethodPut, "/api/projects/1", updated, true)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	after, err := f.repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", after.Description)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/projects/42", updated, true).Code)
}

func TestUpdateStoresEmptyFields(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodPost, "/api/projects", validBody, true)

	cleared := strings.Replace(validBody, `"https://me.dev"`, `""`, 1)
	require.Equal(t, http.StatusNoContent, f.do(http.MethodPut, "/api/projects/1", cleared, true).Code)

	p, err := f.repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, p.LiveURL)
	assert.Equal(t, "Portfolio", p.Title)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodPost, "/api/projects", validBody, true)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/projects/1", "", true).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/projects/1", "", false).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/projects/1", "", true).Code)
}

func TestBadRequests(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "non numeric get", method: http.MethodGet, path: "/api/projects/abc"},
		{name: "non numeric delete", method: http.MethodDelete, path: "/api/projects/abc"},
		{name: "malformed json", method: http.MethodPost, path: "/api/projects", body: `{"title":`},
		{name: "missing field", method: http.MethodPost, path: "/api/projects", body: `{"title":"x","description":"d","techStack":"t","githubUrl":"g"}`},
		{name: "empty field on create", method: http.MethodPost, path: "/api/projects", body: strings.Replace(validBody, `"Portfolio"`, `""`, 1)},
		{name: "malformed json on update", method: http.MethodPut, path: "/api/projects/1", body: `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := f.do(tt.method, tt.path, tt.body, true)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
	assert.Equal(t, 0, f.repo.Len())
}

func TestWritesRequireToken(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodPost, "/api/projects", validBody, true)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/projects", validBody},
		{http.MethodPut, "/api/projects/1", validBody},
		{http.MethodDelete, "/api/projects/1", ""},
	} {
		rr := f.do(tc.method, tc.path, tc.body, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, tc.method)
	}

	assert.Equal(t, 1, f.repo.Len())
	p, err := f.repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", p.Title)
}

type failingService struct{ ProjectService }

func (failingService) List(context.Context) ([]domain.Project, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailureIsOpaque(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	r := gin.New()
	New(failingService{}, logger).Register(r.Group("/api/projects"), func(c *gin.Context) { c.Next() })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "list", hook.LastEntry().Data["op"])
}

func TestStoreFailureLogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	r := gin.New()
	r.Use(apimw.RequestIDMiddleware(logger))
	New(failingService{}, logger).Register(r.Group("/api/projects"), func(c *gin.Context) { c.Next() })

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("X-Request-Id", "req-123")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var failure *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "project store failure" {
			failure = e
		}
	}
	require.NotNil(t, failure)
	assert.Equal(t, "req-123", failure.Data["request_id"])
}
