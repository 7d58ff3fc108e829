package middleware

import (
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

var testSecret = []byte("test-secret")

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) InfoWithFields(string, map[string]interface{}) {}
func (nopLogger) Error(error, string) {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string) {}
func (nopLogger) DebugWithFields(string, map[string]interface{}) {}
func (nopLogger) Warn(string) {}
func (nopLogger) WarnWithFields(string, map[string]interface{}) {}

var _ outbound.LoggerPort = nopLogger{}

func hmacKeyfunc(token *jwt.Token) (interface{}, error) {
	return testSecret, nil
}

func signToken(t *testing.T, subject string, scope string, expiresAt time.Time) string {
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Scopes: scope,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatal("Failed to sign token:", err)
	}
	return signed
}

func newTestRouter(auth AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(auth.AuthMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":   UserID(c),
			"scopes": strings.Join(c.GetStringSlice(ContextScopesKey), ","),
		})
	})
	router.GET("/admin", RequireScope("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJwtAuthMiddleware(t *testing.T) {
	router := newTestRouter(NewJwtAuthHandler(nopLogger{}, hmacKeyfunc))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "alice", "read admin", time.Now().Add(time.Hour)))
	rec := serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"scopes":"read,admin","user":"alice"}`, rec.Body.String())

	anonymous := serve(router, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, anonymous.Code)
	assert.Equal(t, `{"scopes":"","user":""}`, anonymous.Body.String())

	expired := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	expired.Header.Set("Authorization", "Bearer "+signToken(t, "alice", "", time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, serve(router, expired).Code)

	garbage := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	garbage.Header.Set("Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, serve(router, garbage).Code)
}

func TestRequireScope(t *testing.T) {
	router := newTestRouter(NewJwtAuthHandler(nopLogger{}, hmacKeyfunc))

	assert.Equal(t, http.StatusUnauthorized, serve(router, httptest.NewRequest(http.MethodGet, "/admin", nil)).Code)

	reader := httptest.NewRequest(http.MethodGet, "/admin", nil)
	reader.Header.Set("Authorization", "Bearer "+signToken(t, "bob", "read", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusForbidden, serve(router, reader).Code)

	admin := httptest.NewRequest(http.MethodGet, "/admin", nil)
	admin.Header.Set("Authorization", "Bearer "+signToken(t, "root", "admin", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusNoContent, serve(router, admin).Code)
}

func TestSessionAuthMiddleware(t *testing.T) {
	router := newTestRouter(NewSessionAuthHandler("admin", "admin"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "alice"})
	rec := serve(router, req)
	assert.Equal(t, `{"scopes":"","user":"alice"}`, rec.Body.String())

	userOnAdmin := httptest.NewRequest(http.MethodGet, "/admin", nil)
	userOnAdmin.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "alice"})
	assert.Equal(t, http.StatusForbidden, serve(router, userOnAdmin).Code)

	admin := httptest.NewRequest(http.MethodGet, "/admin", nil)
	admin.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "admin"})
	assert.Equal(t, http.StatusNoContent, serve(router, admin).Code)
}

func TestSSEMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stream", SSEMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "data: hi\n\n")
	})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:8000"}))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:8000")
	rec := serve(router, req)
	assert.Equal(t, "http://localhost:8000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	foreign := httptest.NewRequest(http.MethodGet, "/health", nil)
	foreign.Header.Set("Origin", "http://evil.example")
	assert.Equal(t, http.StatusForbidden, serve(router, foreign).Code)
}
