package basicauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Skotchmaster/webstore/internal/hash"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	identityKey = "identity"
)

// Identity is the authenticated principal for the current request. Nothing
// is kept between requests; every request re-authenticates.
type Identity struct {
	Username string
	Roles    []string
}

func (id *Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CredentialStore maps a credential pair to an identity and its roles.
type CredentialStore interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, bool)
}

// Middleware authenticates every request with HTTP Basic against the store.
// Paths accepted by skipPrefixes pass through unauthenticated.
func Middleware(store CredentialStore, skipPrefixes ...string) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return true
				}
			}
			return false
		},
		Validator: func(username, password string, c echo.Context) (bool, error) {
			identity, ok := store.Authenticate(c.Request().Context(), username, password)
			if !ok {
				return false, nil
			}
			c.Set(identityKey, identity)
			return true, nil
		},
		Realm: "webstore",
	})
}

// RequireAdmin guards the admin route prefix. It runs after Middleware, so a
// missing identity means the route was wired without authentication.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := IdentityFromContext(c)
		if identity == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		if !identity.HasRole(RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func IdentityFromContext(c echo.Context) *Identity {
	if v := c.Get(identityKey); v != nil {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}

type memoryEntry struct {
	passwordHash string
	roles        []string
}

// MemoryStore is the demo/test CredentialStore backing. Production wiring
// can swap in a database-backed implementation of CredentialStore.
type MemoryStore struct {
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Add(username, password string, roles ...string) error {
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	s.entries[username] = memoryEntry{passwordHash: pwHash, roles: roles}
	return nil
}

func (s *MemoryStore) Authenticate(_ context.Context, username, password string) (*Identity, bool) {
	entry, ok := s.entries[username]
	if !ok {
		return nil, false
	}
	if !hash.CheckPassword(entry.passwordHash, password) {
		return nil, false
	}
	return &Identity{Username: username, Roles: entry.roles}, true
}
