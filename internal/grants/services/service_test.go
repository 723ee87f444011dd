package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodec struct {
	issuedTTL  time.Duration
	renewedTTL time.Duration
}

func (f *fakeCodec) Issue(rules []security.GrantRule, ttl time.Duration) (string, time.Time, error) {
	f.issuedTTL = ttl
	return "signed", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(ttl), nil
}

func (f *fakeCodec) Renew(token string, ttl time.Duration) (string, time.Time, error) {
	if token != "signed" {
		return "", time.Time{}, errors.New("invalid security grant: signature is invalid")
	}
	f.renewedTTL = ttl
	return "renewed", time.Time{}, nil
}

var assetRules = []security.GrantRule{{Object: "asset:*", Action: "edit"}}

func TestService_Issue(t *testing.T) {
	tests := []struct {
		name    string
		authz   security.Checker
		rules   []security.GrantRule
		ttl     int
		wantErr error
	}{
		{"issues", securitytest.AllowAll, assetRules, 30, nil},
		{"max ttl", securitytest.AllowAll, assetRules, 1440, nil},
		{"not an administrator", securitytest.DenyAll, assetRules, 30, handlers.ErrUnauthorized},
		{"zero ttl", securitytest.AllowAll, assetRules, 0, handlers.ErrInvalid},
		{"ttl too long", securitytest.AllowAll, assetRules, 1441, handlers.ErrInvalid},
		{"no rules", securitytest.AllowAll, nil, 30, handlers.ErrInvalid},
		{"blank action", securitytest.AllowAll, []security.GrantRule{{Object: "asset:*"}}, 30, handlers.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := &fakeCodec{}
			grant, err := NewService(codec, tt.authz).Issue(context.Background(), nil, tt.rules, tt.ttl)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", grant.Token)
			assert.Equal(t, time.Duration(tt.ttl)*time.Minute, codec.issuedTTL)
		})
	}
}

func TestService_IssueChecksAdministrateOnGrants(t *testing.T) {
	var asked string
	authz := securitytest.CheckerFunc(func(obj, action string) bool {
		asked = obj + "/" + action
		return true
	})

	_, err := NewService(&fakeCodec{}, authz).Issue(context.Background(), nil, assetRules, 5)
	require.NoError(t, err)
	assert.Equal(t, "security-grant:*/administrate", asked)
}

func TestService_Renew(t *testing.T) {
	codec := &fakeCodec{}
	s := NewService(codec, securitytest.DenyAll)

	grant, err := s.Renew(context.Background(), "signed", 0)
	require.NoError(t, err)
	assert.Equal(t, "renewed", grant.Token)
	assert.Equal(t, time.Hour, codec.renewedTTL)

	_, err = s.Renew(context.Background(), "tampered", 10)
	assert.ErrorIs(t, err, handlers.ErrInvalid)

	_, err = s.Renew(context.Background(), "", 10)
	assert.ErrorIs(t, err, handlers.ErrInvalid)
	assert.EqualError(t, err, "token is required: "+handlers.ErrInvalid.Error())

	_, err = s.Renew(context.Background(), "signed", 5000)
	assert.ErrorIs(t, err, handlers.ErrInvalid)
	assert.EqualError(t, err, fmt.Sprintf("ttlMinutes must be between 1 and %d: %s", maxTTLMinutes, handlers.ErrInvalid))
}
