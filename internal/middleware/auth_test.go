package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func setupOwnerRouter(enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(OwnerAuth(testSecret, enabled))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "actor": c.GetString(ActorKey)})
	})
	return r
}

func doOwnerRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestOwnerAuth(t *testing.T) {
	valid, _, err := GenerateOwnerToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expired, _, _ := GenerateOwnerToken(testSecret, -time.Minute)
	foreign, _, _ := GenerateOwnerToken("other-secret", time.Hour)

	refreshClaims := &OwnerClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   ownerSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	refresh, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(testSecret))

	tests := []struct {
		name       string
		enabled    bool
		header     string
		wantStatus int
	}{
		{"valid_token", true, "Bearer " + valid, http.StatusOK},
		{"missing_header", true, "", http.StatusUnauthorized},
		{"wrong_scheme", true, "Basic " + valid, http.StatusUnauthorized},
		{"expired_token", true, "Bearer " + expired, http.StatusUnauthorized},
		{"wrong_secret", true, "Bearer " + foreign, http.StatusUnauthorized},
		{"refresh_token_rejected", true, "Bearer " + refresh, http.StatusUnauthorized},
		{"auth_disabled", false, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doOwnerRequest(setupOwnerRouter(tt.enabled), tt.header)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := parseBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				if actor, _ := body["actor"].(string); actor != "owner" {
					t.Errorf("expected actor owner, got %q", actor)
				}
				return
			}
			errObj, ok := body["error"].(map[string]interface{})
			if !ok || errObj["code"] != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED error, got %v", body)
			}
		})
	}
}

func TestGenerateOwnerToken_Expiry(t *testing.T) {
	before := time.Now()
	_, expiresAt, err := GenerateOwnerToken(testSecret, 2*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expiresAt.Before(before.Add(2*time.Hour)) || expiresAt.After(time.Now().Add(2*time.Hour)) {
		t.Errorf("unexpected expiry %v", expiresAt)
	}
}
