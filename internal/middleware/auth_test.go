package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewAuthMiddleware(testSecret)
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		c.String(http.StatusOK, "hello %s", userID)
	})
	return r
}

func signedToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingCookie(t *testing.T) {
	r := newGuardedRouter()

	w := request(r, "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuthValidToken(t *testing.T) {
	r := newGuardedRouter()

	token := signedToken(t, testSecret, "user-123", time.Now().Add(time.Hour))
	w := request(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello user-123", w.Body.String())
}

func TestRequireAuthExpiredToken(t *testing.T) {
	r := newGuardedRouter()

	// Absolute lifetime elapsed: redirect regardless of activity.
	token := signedToken(t, testSecret, "user-123", time.Now().Add(-time.Minute))
	w := request(r, token)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuthWrongSecret(t *testing.T) {
	r := newGuardedRouter()

	token := signedToken(t, "other-secret", "user-123", time.Now().Add(time.Hour))
	w := request(r, token)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
