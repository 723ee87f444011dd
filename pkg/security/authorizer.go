package security

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	mongodbadapter "github.com/casbin/mongodb-adapter/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// casbinModel evaluates one request for the caller's whole subject list, so a
// deny on any subject beats an allow on any other. r.sub is a comma-joined list.
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = hasSubject(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

const policyCollection = "casbin_policies"

// Authorizer decides per-entity access for a principal
type Authorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewAuthorizer loads policies from MongoDB and persists changes back to it
func NewAuthorizer(client *mongo.Client, dbName string) (*Authorizer, error) {
	adapter, err := mongodbadapter.NewAdapterByDB(client, &mongodbadapter.AdapterConfig{
		DatabaseName:   dbName,
		CollectionName: policyCollection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin MongoDB adapter: %w", err)
	}

	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	enforcer.EnableAutoSave(true)
	enforcer.AddFunction("hasSubject", hasSubject)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policies: %w", err)
	}

	slog.Info("Casbin authorizer initialized", "adapter", "mongodb", "collection", policyCollection)
	return &Authorizer{enforcer: enforcer}, nil
}

// NewMemoryAuthorizer builds an authorizer with no persistence
func NewMemoryAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	enforcer.AddFunction("hasSubject", hasSubject)
	return &Authorizer{enforcer: enforcer}, nil
}

// Allow adds an allow policy; an existing identical policy is not an error
func (a *Authorizer) Allow(subject, obj, action string) error {
	_, err := a.enforcer.AddPolicy(subject, strings.ToLower(obj), action, "allow")
	return err
}

// Deny adds a deny policy
func (a *Authorizer) Deny(subject, obj, action string) error {
	_, err := a.enforcer.AddPolicy(subject, strings.ToLower(obj), action, "deny")
	return err
}

// AssignRole links a subject to a role, e.g. AssignRole("user:42", "role:staff")
func (a *Authorizer) AssignRole(subject, role string) error {
	_, err := a.enforcer.AddGroupingPolicy(subject, role)
	return err
}

// IsAuthorized checks the principal's grant first, then each casbin subject in order
func (a *Authorizer) IsAuthorized(ctx context.Context, p *Principal, obj, action string) bool {
	if p != nil && p.Grant.IsAccessGranted(obj, action) {
		return true
	}
	if a == nil {
		return false
	}

	subjects := p.subjects()
	expanded := append([]string{}, subjects...)
	for _, subject := range subjects {
		roles, err := a.enforcer.GetImplicitRolesForUser(subject)
		if err != nil {
			slog.WarnContext(ctx, "Failed to expand casbin roles", "subject", subject, "error", err)
			continue
		}
		expanded = append(expanded, roles...)
	}

	obj = strings.ToLower(obj)
	allowed, err := a.enforcer.Enforce(strings.Join(expanded, ","), obj, action)
	if err != nil {
		slog.ErrorContext(ctx, "Authorization check failed", "subjects", expanded, "object", obj, "action", action, "error", err)
		return false
	}
	return allowed
}

// hasSubject is the casbin matcher function: is policySubject one of the listed subjects
func hasSubject(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("hasSubject expects 2 arguments, got %d", len(args))
	}
	list, _ := args[0].(string)
	policySubject, _ := args[1].(string)
	for _, subject := range strings.Split(list, ",") {
		if subject == policySubject {
			return true, nil
		}
	}
	return false, nil
}

// DefaultPolicies are seeded on first start; administrators may do anything,
// signed-in users may view, everyone may view lookup data.
var DefaultPolicies = [][]string{
	{"role:administrators", "*", "*", "allow"},
	{"role:authenticated", "*", ActionView, "allow"},
	{"role:everyone", "definedtype:*", ActionView, "allow"},
	{"role:everyone", "entitytype:*", ActionView, "allow"},
	{"role:everyone", "badge:*", ActionView, "allow"},
	{"role:staff", "definedtype:*", ActionEdit, "allow"},
	{"role:staff", "location:*", ActionEdit, "allow"},
	{"role:staff", "asset:*", ActionEdit, "allow"},
	{"role:staff", "tag:*", ActionEdit, "allow"},
}

// SeedDefaults adds DefaultPolicies that are not present yet
func (a *Authorizer) SeedDefaults() error {
	for _, policy := range DefaultPolicies {
		if _, err := a.enforcer.AddPolicy(policy[0], policy[1], policy[2], policy[3]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", policy, err)
		}
	}
	return nil
}
