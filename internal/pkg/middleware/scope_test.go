package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

var testJWT = models.JWTConfig{Secret: "scope-test-secret", Expiration: 10, Issuer: "test"}

func signedToken(t *testing.T, scope models.Scope) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(scope, testJWT)
	require.NoError(t, err)
	return token
}

func TestScopeMiddleware(t *testing.T) {
	valid := models.Scope{UserID: "driver-1", Name: "Ana", CompanyID: "acme", SectorID: "north"}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + signedToken(t, valid), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"missing sector", "Bearer " + signedToken(t, models.Scope{UserID: "u", CompanyID: "acme"}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var got models.Scope
			e.GET("/", func(c echo.Context) error {
				got, _ = GetScope(c)
				return c.NoContent(http.StatusOK)
			}, ScopeMiddleware(testJWT))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, valid, got)
			}
		})
	}
}

func TestWebSocketScopeMiddleware_QueryToken(t *testing.T) {
	scope := models.Scope{UserID: "admin", CompanyID: "acme", SectorID: "north"}
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		got, ok := GetScope(c)
		require.True(t, ok)
		assert.Equal(t, scope, got)
		return c.NoContent(http.StatusOK)
	}, WebSocketScopeMiddleware(testJWT))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token="+signedToken(t, scope), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// plain middleware ignores the query parameter
	e2 := echo.New()
	e2.GET("/ws", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, ScopeMiddleware(testJWT))
	rec = httptest.NewRecorder()
	e2.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token="+signedToken(t, scope), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		assert.NotEmpty(t, c.Get("request_id"))
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(echo.HeaderXRequestID))
}
