package security

import (
	"context"
	"log/slog"
)

// UserAuthenticator turns request headers into a User; nil means anonymous
type UserAuthenticator interface {
	ValidateOptionalAuthFromHeaders(authHeader, cookieHeader string) *User
}

// Guard resolves principals and answers authorization questions for routes
type Guard struct {
	users      UserAuthenticator
	grants     *GrantCodec
	authorizer *Authorizer
}

func NewGuard(users UserAuthenticator, grants *GrantCodec, authorizer *Authorizer) *Guard {
	return &Guard{users: users, grants: grants, authorizer: authorizer}
}

// Principal resolves the caller. An invalid grant token is ignored and logged,
// the request continues with the caller's normal rights.
func (g *Guard) Principal(ctx context.Context, headers AuthHeaders, grantToken string) *Principal {
	p := &Principal{}
	if g.users != nil {
		p.User = g.users.ValidateOptionalAuthFromHeaders(headers.Authorization, headers.Cookie)
	}

	if grantToken != "" && g.grants != nil {
		grant, err := g.grants.Decode(grantToken)
		if err != nil {
			slog.WarnContext(ctx, "Ignoring security grant token", "error", err)
		} else {
			p.Grant = grant
		}
	}
	return p
}

// Can reports whether p may perform action on obj
func (g *Guard) Can(ctx context.Context, p *Principal, obj, action string) bool {
	return g.authorizer.IsAuthorized(ctx, p, obj, action)
}

// Grants exposes the codec for endpoints that issue tokens
func (g *Guard) Grants() *GrantCodec {
	return g.grants
}

// Checker is the part of Guard that services depend on
type Checker interface {
	Can(ctx context.Context, p *Principal, obj, action string) bool
}

var _ Checker = (*Guard)(nil)
