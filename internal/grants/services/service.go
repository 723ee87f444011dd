package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-controls/internal/grants/dto"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
)

const (
	maxTTLMinutes     = 24 * 60
	defaultTTLMinutes = 60
)

// Codec signs grant tokens; *security.GrantCodec implements it
type Codec interface {
	Issue(rules []security.GrantRule, ttl time.Duration) (string, time.Time, error)
	Renew(token string, ttl time.Duration) (string, time.Time, error)
}

// Service issues and renews security grant tokens
type Service struct {
	codec Codec
	authz security.Checker
}

// NewService creates a new service instance
func NewService(codec Codec, authz security.Checker) *Service {
	return &Service{codec: codec, authz: authz}
}

// Issue signs a grant for rules. Only callers who administrate grants may do this.
func (s *Service) Issue(ctx context.Context, p *security.Principal, rules []security.GrantRule, ttlMinutes int) (*dto.GrantBag, error) {
	if !s.authz.Can(ctx, p, security.Object("security-grant", ""), security.ActionAdministrate) {
		return nil, fmt.Errorf("not allowed to issue security grants: %w", handlers.ErrUnauthorized)
	}
	ttl, err := lifetime(ttlMinutes, 0)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("at least one rule is required: %w", handlers.ErrInvalid)
	}
	for _, rule := range rules {
		if strings.TrimSpace(rule.Object) == "" || strings.TrimSpace(rule.Action) == "" {
			return nil, fmt.Errorf("every rule needs an object and an action: %w", handlers.ErrInvalid)
		}
	}

	token, expiresAt, err := s.codec.Issue(rules, ttl)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Issued security grant", "rules", len(rules), "expires_at", expiresAt)
	return &dto.GrantBag{Token: token, ExpiresAt: expiresAt}, nil
}

// Renew re-issues token with the same rules and a new expiry
func (s *Service) Renew(ctx context.Context, token string, ttlMinutes int) (*dto.GrantBag, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required: %w", handlers.ErrInvalid)
	}
	ttl, err := lifetime(ttlMinutes, defaultTTLMinutes)
	if err != nil {
		return nil, err
	}

	renewed, expiresAt, err := s.codec.Renew(token, ttl)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, handlers.ErrInvalid)
	}
	return &dto.GrantBag{Token: renewed, ExpiresAt: expiresAt}, nil
}

func lifetime(minutes, fallback int) (time.Duration, error) {
	if minutes == 0 {
		minutes = fallback
	}
	if minutes < 1 || minutes > maxTTLMinutes {
		return 0, fmt.Errorf("ttlMinutes must be between 1 and %d: %w", maxTTLMinutes, handlers.ErrInvalid)
	}
	return time.Duration(minutes) * time.Minute, nil
}
