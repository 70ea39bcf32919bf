package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Skotchmaster/webstore/internal/middleware/basicauth"
	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/Skotchmaster/webstore/internal/repo"
	"github.com/Skotchmaster/webstore/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	P  *ProductHTTP
	U  *UserHTTP
	A  *AdminHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}))

	gormRepo := repo.NewGormRepo(db)

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		P:  &ProductHTTP{Svc: &service.ProductService{Repo: gormRepo}},
		U:  &UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		A:  &AdminHTTP{Repo: gormRepo},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	env := newTestEnv(t)

	store := basicauth.NewMemoryStore()
	require.NoError(t, store.Add("user", "password", basicauth.RoleUser))
	require.NoError(t, store.Add("admin", "admin", basicauth.RoleUser, basicauth.RoleAdmin))

	Register(env.E, &Deps{
		ProductHandler: env.P,
		UserHandler:    env.U,
		AdminHandler:   env.A,
		Credentials:    store,
	})

	return env.E, env.DB
}

func doServerRequest(t *testing.T, e *echo.Echo, method, path string, body interface{}, creds ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if len(creds) == 2 {
		req.SetBasicAuth(creds[0], creds[1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
