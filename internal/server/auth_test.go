package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/export"
	"github.com/bauwerk-digital/contracts-tracker/internal/pipeline"
	"github.com/bauwerk-digital/contracts-tracker/internal/repository"
)

func newProtectedAPI(t *testing.T) *gin.Engine {
	t.Helper()
	repo := repository.NewMemoryRepository(0, nil)
	analyzer := pipeline.NewAnalyzer(&stubGenerator{response: "{}"}, pipeline.Config{}, nil)
	handler := NewContractHandler(analyzer, repo, export.NewService(repo, nil))
	return NewRouter(handler, &common.AuthConfig{
		JWTSecret:        "test-secret",
		TokenExpireHours: 1,
		Users:            []common.User{{Username: "admin", Password: "geheim"}},
	})
}

func login(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesToken(t *testing.T) {
	router := newProtectedAPI(t)

	rec := login(t, router, "admin", "geheim")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Token == "" {
		t.Fatalf("expected token, got %s", rec.Body.String())
	}

	// The token grants access to the protected API.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	apiRec := httptest.NewRecorder()
	router.ServeHTTP(apiRec, req)
	if apiRec.Code != http.StatusOK {
		t.Errorf("authenticated list: status = %d", apiRec.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newProtectedAPI(t)

	if rec := login(t, router, "admin", "falsch"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d", rec.Code)
	}
	if rec := login(t, router, "niemand", "geheim"); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: status = %d", rec.Code)
	}
}

func TestProtectedAPIRequiresToken(t *testing.T) {
	router := newProtectedAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without token", rec.Code)
	}
}

func TestLoginStaysUnprotected(t *testing.T) {
	// Login itself must not demand a token, even with auth enabled.
	router := newProtectedAPI(t)
	if rec := login(t, router, "admin", "geheim"); rec.Code == http.StatusUnauthorized {
		t.Error("login endpoint demands authentication")
	}
}

func TestHealthzBypassesAuth(t *testing.T) {
	router := newProtectedAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
