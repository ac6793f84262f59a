package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/middleware"
	"depotlens/internal/services"
	"depotlens/internal/validator"
)

// --- mock services ---

type mockAuthService struct {
	enabled          bool
	verifyPasswordFn func(password string) error
}

func (m *mockAuthService) Enabled() bool { return m.enabled }

func (m *mockAuthService) VerifyPassword(password string) error {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(password)
	}
	return nil
}

type auditCall struct {
	actor, action, resourceType, resourceID string
	changes                                 map[string]interface{}
}

type mockAuditService struct {
	mu    sync.Mutex
	calls []auditCall
}

func (m *mockAuditService) Log(actor, action, resourceType, resourceID, _ string, changes map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, auditCall{actor, action, resourceType, resourceID, changes})
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.calls {
		out = append(out, c.action)
	}
	return out
}

var (
	_ services.AuthServicer  = (*mockAuthService)(nil)
	_ services.AuditServicer = (*mockAuditService)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectActor(actor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	r.GET("/auth/status", handler.Status)
	return r
}

// --- tests ---

func TestAuthHandler_Login(t *testing.T) {
	const secret = "handler-secret"

	t.Run("returns_token_for_correct_password", func(t *testing.T) {
		audit := &mockAuditService{}
		authSvc := &mockAuthService{
			enabled: true,
			verifyPasswordFn: func(password string) error {
				if password != "password123" {
					return apperrors.ErrInvalidCredentials
				}
				return nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit, secret, time.Hour))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		token, _ := result["token"].(string)
		if _, err := middleware.ValidateOwnerToken(secret, token); err != nil {
			t.Errorf("expected a valid owner token, got error: %v", err)
		}
		if result["token_type"] != "Bearer" {
			t.Errorf("expected token_type Bearer, got %v", result["token_type"])
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "LOGIN" {
			t.Errorf("expected LOGIN audit entry, got %v", got)
		}
	})

	t.Run("returns_401_for_wrong_password", func(t *testing.T) {
		audit := &mockAuditService{}
		authSvc := &mockAuthService{
			enabled:          true,
			verifyPasswordFn: func(string) error { return apperrors.ErrInvalidCredentials },
		}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit, secret, time.Hour))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
		if got := audit.actions(); len(got) != 1 || got[0] != "LOGIN_FAILED" {
			t.Errorf("expected LOGIN_FAILED audit entry, got %v", got)
		}
	})

	t.Run("returns_404_when_auth_disabled", func(t *testing.T) {
		audit := &mockAuditService{}
		authSvc := &mockAuthService{
			verifyPasswordFn: func(string) error { return apperrors.ErrAuthNotConfigured },
		}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit, secret, time.Hour))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"password":"anything"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "AUTH_NOT_CONFIGURED")
		if len(audit.actions()) != 0 {
			t.Errorf("expected no audit entries, got %v", audit.actions())
		}
	})

	t.Run("returns_400_for_missing_password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{enabled: true}, &mockAuditService{}, secret, time.Hour))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestAuthHandler_Status(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{enabled: enabled}, &mockAuditService{}, "s", time.Hour))

		rec := doRequest(r, http.MethodGet, "/auth/status", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["auth_enabled"]; got != enabled {
			t.Errorf("expected auth_enabled %v, got %v", enabled, got)
		}
	}
}
