package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testKey)
	require.NoError(t, err)
	return signed
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, err
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{Issuer: "cohort-server", SigningKey: testKey})

	signed := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-1",
			Issuer:    "cohort-server",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"researcher"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	_, err := invoke(mw, req)
	require.NoError(t, err)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	_, err := invoke(mw, req)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestJWTMiddlewareRejectsWrongIssuer(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{Issuer: "cohort-server", SigningKey: testKey})

	signed := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-1",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	_, err := invoke(mw, req)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})

	signed := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	_, err := invoke(mw, req)
	require.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(UserRolesKey), []string{"researcher"})

	err := RequireRole("researcher", "admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	c2 := e.NewContext(req, httptest.NewRecorder())
	c2.Set(string(UserRolesKey), []string{"viewer"})
	err = RequireRole("researcher")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c2)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
}
