package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRule_Matches(t *testing.T) {
	tests := []struct {
		name   string
		rule   GrantRule
		obj    string
		action string
		want   bool
	}{
		{"exact", GrantRule{Object: "category:abc", Action: "view"}, "category:abc", "view", true},
		{"case insensitive", GrantRule{Object: "Category:ABC", Action: "View"}, "category:abc", "view", true},
		{"other entity", GrantRule{Object: "category:abc", Action: "view"}, "category:def", "view", false},
		{"other action", GrantRule{Object: "category:abc", Action: "view"}, "category:abc", "edit", false},
		{"type wildcard", GrantRule{Object: "asset:*", Action: "edit"}, "asset:/images", "edit", true},
		{"action wildcard", GrantRule{Object: "group:g1", Action: "*"}, "group:g1", "administrate", true},
		{"wildcard other type", GrantRule{Object: "asset:*", Action: "edit"}, "page:p1", "edit", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.obj, tt.action))
		})
	}
}

func TestGrantCodec_RoundTrip(t *testing.T) {
	codec := NewGrantCodec([]byte("secret"))
	rules := []GrantRule{{Object: "definedtype:t1", Action: ActionEdit}}

	token, expiresAt, err := codec.Issue(rules, 10*time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 2*time.Second)

	grant, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, rules, grant.Rules)
	assert.NotEmpty(t, grant.ID)
	assert.True(t, grant.IsAccessGranted("definedtype:t1", ActionEdit))
	assert.False(t, grant.IsAccessGranted("definedtype:t2", ActionEdit))
}

func TestGrantCodec_RejectsTamperedAndExpired(t *testing.T) {
	codec := NewGrantCodec([]byte("secret"))
	other := NewGrantCodec([]byte("other-secret"))

	token, _, err := other.Issue([]GrantRule{{Object: "asset:*", Action: "*"}}, time.Minute)
	require.NoError(t, err)
	_, err = codec.Decode(token)
	assert.Error(t, err)

	past := time.Now().Add(-time.Hour)
	codec.now = func() time.Time { return past }
	expired, _, err := codec.Issue([]GrantRule{{Object: "asset:*", Action: "*"}}, time.Minute)
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Decode(expired)
	assert.Error(t, err)

	_, err = codec.Decode("not-a-token")
	assert.Error(t, err)
}

func TestGrantCodec_IssueRequiresRules(t *testing.T) {
	_, _, err := NewGrantCodec([]byte("secret")).Issue(nil, time.Minute)
	assert.Error(t, err)
}

func TestGrantCodec_Renew(t *testing.T) {
	codec := NewGrantCodec([]byte("secret"))
	token, _, err := codec.Issue([]GrantRule{{Object: "page:p1", Action: ActionView}}, time.Minute)
	require.NoError(t, err)

	renewed, expiresAt, err := codec.Renew(token, time.Hour)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now().Add(50*time.Minute)))

	grant, err := codec.Decode(renewed)
	require.NoError(t, err)
	assert.True(t, grant.IsAccessGranted("page:p1", ActionView))
}

func TestNilGrant(t *testing.T) {
	var g *Grant
	assert.False(t, g.IsAccessGranted("page:p1", ActionView))
}

func newTestAuthorizer(t *testing.T) *Authorizer {
	t.Helper()
	a, err := NewMemoryAuthorizer()
	require.NoError(t, err)
	require.NoError(t, a.SeedDefaults())
	return a
}

func TestAuthorizer_DefaultPolicies(t *testing.T) {
	a := newTestAuthorizer(t)
	ctx := context.Background()

	anonymous := &Principal{}
	member := &Principal{User: &User{UserID: "u1"}}
	staff := &Principal{User: &User{UserID: "u2", Roles: []string{"Staff"}}}
	admin := &Principal{User: &User{UserID: "u3", Roles: []string{"Administrators"}}}

	assert.True(t, a.IsAuthorized(ctx, anonymous, Object("definedtype", "t1"), ActionView))
	assert.False(t, a.IsAuthorized(ctx, anonymous, Object("group", "g1"), ActionView))

	assert.True(t, a.IsAuthorized(ctx, member, Object("group", "g1"), ActionView))
	assert.False(t, a.IsAuthorized(ctx, member, Object("definedtype", "t1"), ActionEdit))

	assert.True(t, a.IsAuthorized(ctx, staff, Object("definedtype", "t1"), ActionEdit))
	assert.False(t, a.IsAuthorized(ctx, staff, Object("security-grant", ""), ActionAdministrate))

	assert.True(t, a.IsAuthorized(ctx, admin, Object("security-grant", ""), ActionAdministrate))
}

func TestAuthorizer_DenyOverridesAllow(t *testing.T) {
	a := newTestAuthorizer(t)
	require.NoError(t, a.Deny("user:u1", "page:secret", ActionView))
	ctx := context.Background()

	denied := &Principal{User: &User{UserID: "u1"}}
	other := &Principal{User: &User{UserID: "u9"}}

	assert.False(t, a.IsAuthorized(ctx, denied, "page:secret", ActionView))
	assert.True(t, a.IsAuthorized(ctx, denied, "page:public", ActionView))
	assert.True(t, a.IsAuthorized(ctx, other, "page:secret", ActionView))
	assert.False(t, a.IsAuthorized(ctx, other, "page:secret", ActionEdit))
}

func TestAuthorizer_RoleAssignment(t *testing.T) {
	a := newTestAuthorizer(t)
	require.NoError(t, a.AssignRole("user:u7", "role:staff"))

	p := &Principal{User: &User{UserID: "u7"}}
	assert.True(t, a.IsAuthorized(context.Background(), p, Object("asset", ""), ActionEdit))
}

func TestAuthorizer_GrantBypassesPolicies(t *testing.T) {
	a := newTestAuthorizer(t)
	p := &Principal{Grant: &Grant{Rules: []GrantRule{{Object: "group:g1", Action: ActionEdit}}}}

	assert.True(t, a.IsAuthorized(context.Background(), p, Object("group", "G1"), ActionEdit))
	assert.False(t, a.IsAuthorized(context.Background(), p, Object("group", "g2"), ActionEdit))
}

type stubUsers struct{ user *User }

func (s stubUsers) ValidateOptionalAuthFromHeaders(authHeader, cookieHeader string) *User {
	if authHeader == "" {
		return nil
	}
	return s.user
}

func TestGuard_Principal(t *testing.T) {
	codec := NewGrantCodec([]byte("secret"))
	guard := NewGuard(stubUsers{user: &User{UserID: "u1"}}, codec, newTestAuthorizer(t))

	token, _, err := codec.Issue([]GrantRule{{Object: "page:p1", Action: ActionEdit}}, time.Minute)
	require.NoError(t, err)

	p := guard.Principal(context.Background(), AuthHeaders{Authorization: "Bearer x"}, token)
	assert.True(t, p.IsAuthenticated())
	require.NotNil(t, p.Grant)
	assert.True(t, guard.Can(context.Background(), p, "page:p1", ActionEdit))

	anonymous := guard.Principal(context.Background(), AuthHeaders{}, "garbage")
	assert.False(t, anonymous.IsAuthenticated())
	assert.Nil(t, anonymous.Grant)
}

func TestObject(t *testing.T) {
	assert.Equal(t, "category:*", Object("Category", ""))
	assert.Equal(t, "category:abc", Object("category", "ABC"))
}
