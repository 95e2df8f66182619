package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-init-do/jobhub/internal/auth"
)

const testSecret = "test-secret"

// runGuarded sends a request through AuthGuard (plus any inner guards,
// mirroring the real route chain) into a trivial handler.
func runGuarded(t *testing.T, cookie *http.Cookie, inner ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	for i := len(inner) - 1; i >= 0; i-- {
		handler = inner[i](handler)
	}
	require.NoError(t, AuthGuard(testSecret)(handler)(c))
	return rec, c
}

func TestAuthGuardNoCookie(t *testing.T) {
	rec, _ := runGuarded(t, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no session token")
}

func TestAuthGuardBadToken(t *testing.T) {
	rec, _ := runGuarded(t, &http.Cookie{Name: "token", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired")
}

func TestAuthGuardExpiredToken(t *testing.T) {
	token, err := auth.SignSession(testSecret, "u-1", "student", -time.Minute)
	require.NoError(t, err)

	rec, _ := runGuarded(t, &http.Cookie{Name: "token", Value: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGuardAttachesIdentity(t *testing.T) {
	token, err := auth.SignSession(testSecret, "u-1", "recruiter", time.Hour)
	require.NoError(t, err)

	rec, c := runGuarded(t, &http.Cookie{Name: "token", Value: token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", c.Get("user_id"))
	assert.Equal(t, "recruiter", c.Get("role"))
}

func TestRequireRolesAllows(t *testing.T) {
	token, err := auth.SignSession(testSecret, "u-1", "recruiter", time.Hour)
	require.NoError(t, err)

	rec, _ := runGuarded(t, &http.Cookie{Name: "token", Value: token}, RequireRoles("recruiter"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesDenies(t *testing.T) {
	token, err := auth.SignSession(testSecret, "u-1", "student", time.Hour)
	require.NoError(t, err)

	rec, _ := runGuarded(t, &http.Cookie{Name: "token", Value: token}, RequireRoles("recruiter"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
}
