package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"staffing-backend/internal/shared/auth"
)

const authTestSecret = "middleware-secret"

func testKeys(t *testing.T, secret string) *auth.Keys {
	t.Helper()
	keys, err := auth.NewKeys(secret, "dev")
	if err != nil {
		t.Fatalf("NewKeys: %v", err)
	}
	return keys
}

func signTestToken(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(testKeys(t, authTestSecret)))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": UserIDFromContext(c),
			"role":   UserRoleFromContext(c),
		})
	}
	router.GET("/api/v1/resumes/current", handler)
	router.OPTIONS("/api/v1/resumes/current", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/resumes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingIdentity(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	token := signTestToken(t, authTestSecret, auth.Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
	})

	router := newAuthRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := resp.Body.String(); body != `{"role":"admin","userId":"user-42"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuthRejectsTokenFromOtherSecret(t *testing.T) {
	router := newAuthRouter(t)
	token := signTestToken(t, "someone-else", auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
