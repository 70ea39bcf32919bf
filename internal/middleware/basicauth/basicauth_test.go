package basicauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, store.Add("user", "password", RoleUser))
	require.NoError(t, store.Add("admin", "admin", RoleUser, RoleAdmin))
	return store
}

func TestMemoryStore_Authenticate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	identity, ok := store.Authenticate(ctx, "user", "password")
	require.True(t, ok)
	assert.Equal(t, "user", identity.Username)
	assert.True(t, identity.HasRole(RoleUser))
	assert.False(t, identity.HasRole(RoleAdmin))

	_, ok = store.Authenticate(ctx, "user", "wrong")
	assert.False(t, ok)

	_, ok = store.Authenticate(ctx, "ghost", "password")
	assert.False(t, ok)
}

func TestMiddleware_RejectsWithoutCredentials(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(newTestStore(t), "/public/"))
	e.GET("/things", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_SkipsPublicPrefix(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(newTestStore(t), "/public/"))
	e.GET("/public/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/public/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_SetsIdentity(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(newTestStore(t)))
	e.GET("/whoami", func(c echo.Context) error {
		identity := IdentityFromContext(c)
		require.NotNil(t, identity)
		return c.String(http.StatusOK, identity.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.SetBasicAuth("admin", "admin")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", rec.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(newTestStore(t)))
	admin := e.Group("/admin", RequireAdmin)
	admin.GET("/stats", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.SetBasicAuth("user", "password")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.SetBasicAuth("admin", "admin")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
