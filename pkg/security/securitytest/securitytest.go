// Package securitytest builds Guards for route and service tests.
package securitytest

import (
	"context"
	"strings"
	"testing"

	"go-controls/pkg/security"
)

// Secret signs grant tokens issued by test guards
var Secret = []byte("securitytest-grant-secret")

// Users authenticates "Authorization: Bearer <key>" against a fixed map
type Users map[string]*security.User

func (u Users) ValidateOptionalAuthFromHeaders(authHeader, cookieHeader string) *security.User {
	return u[strings.TrimPrefix(authHeader, "Bearer ")]
}

// NewGuard returns a Guard backed by an in-memory authorizer seeded with the default policies
func NewGuard(t testing.TB, users Users) (*security.Guard, *security.Authorizer) {
	t.Helper()
	authorizer, err := security.NewMemoryAuthorizer()
	if err != nil {
		t.Fatalf("failed to create authorizer: %v", err)
	}
	if err := authorizer.SeedDefaults(); err != nil {
		t.Fatalf("failed to seed policies: %v", err)
	}
	return security.NewGuard(users, security.NewGrantCodec(Secret), authorizer), authorizer
}

// CheckerFunc adapts a function to security.Checker
type CheckerFunc func(obj, action string) bool

func (f CheckerFunc) Can(ctx context.Context, p *security.Principal, obj, action string) bool {
	return f(obj, action)
}

var (
	AllowAll = CheckerFunc(func(obj, action string) bool { return true })
	DenyAll  = CheckerFunc(func(obj, action string) bool { return false })
)
