package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const grantIssuer = "go-controls/security-grant"

// GrantRule allows Action on Object. Object may end in "*" to cover an entity
// type ("category:*"); Action "*" covers every action.
type GrantRule struct {
	Object string `json:"obj" doc:"Entity object, e.g. category:<guid> or asset:*"`
	Action string `json:"act" doc:"Action name or *"`
}

// Matches reports whether the rule covers obj/action
func (r GrantRule) Matches(obj, action string) bool {
	if r.Action != "*" && !strings.EqualFold(r.Action, action) {
		return false
	}
	pattern := strings.ToLower(r.Object)
	obj = strings.ToLower(obj)
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(obj, prefix)
	}
	return pattern == obj
}

// Grant is a decoded security grant token
type Grant struct {
	ID        string
	Rules     []GrantRule
	ExpiresAt time.Time
}

// IsAccessGranted reports whether any rule of the grant covers obj/action
func (g *Grant) IsAccessGranted(obj, action string) bool {
	if g == nil {
		return false
	}
	for _, rule := range g.Rules {
		if rule.Matches(obj, action) {
			return true
		}
	}
	return false
}

type grantClaims struct {
	Rules []GrantRule `json:"rules"`
	jwt.RegisteredClaims
}

// GrantCodec issues and decodes security grant tokens
type GrantCodec struct {
	secret []byte
	now    func() time.Time
}

func NewGrantCodec(secret []byte) *GrantCodec {
	return &GrantCodec{secret: secret, now: time.Now}
}

// Issue signs a grant carrying rules that expires after ttl
func (c *GrantCodec) Issue(rules []GrantRule, ttl time.Duration) (string, time.Time, error) {
	if len(rules) == 0 {
		return "", time.Time{}, errors.New("a security grant needs at least one rule")
	}

	now := c.now()
	expiresAt := now.Add(ttl)
	claims := grantClaims{
		Rules: rules,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    grantIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign security grant: %w", err)
	}
	return token, expiresAt, nil
}

// Decode validates a token and returns its grant
func (c *GrantCodec) Decode(token string) (*Grant, error) {
	claims := &grantClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(grantIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid security grant: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid security grant")
	}

	return &Grant{
		ID:        claims.ID,
		Rules:     claims.Rules,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Renew re-issues a still valid token with the same rules and a fresh expiry
func (c *GrantCodec) Renew(token string, ttl time.Duration) (string, time.Time, error) {
	grant, err := c.Decode(token)
	if err != nil {
		return "", time.Time{}, err
	}
	return c.Issue(grant.Rules, ttl)
}
