package routes

import (
	"context"

	"go-controls/internal/grants/dto"
	"go-controls/internal/grants/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the security grant routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the security grant routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "security-grant-issue",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/security-grant/issue",
		Summary:     "Issue a security grant",
		Description: "Signs a time-limited token that lets its bearer perform the listed actions",
		Tags:        []string{"Security Grant"},
	}, m.issueHandler)

	huma.Register(api, huma.Operation{
		OperationID: "security-grant-renew",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/security-grant/renew",
		Summary:     "Renew a security grant",
		Tags:        []string{"Security Grant"},
	}, m.renewHandler)
}

func (m *Module) issueHandler(ctx context.Context, input *dto.IssueGrantInput) (*dto.GrantOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	grant, err := m.service.Issue(ctx, p, input.Body.Rules, input.Body.TTLMinutes)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to issue security grant")
	}
	return &dto.GrantOutput{Body: *grant}, nil
}

func (m *Module) renewHandler(ctx context.Context, input *dto.RenewGrantInput) (*dto.GrantOutput, error) {
	grant, err := m.service.Renew(ctx, input.Body.Token, input.Body.TTLMinutes)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to renew security grant")
	}
	return &dto.GrantOutput{Body: *grant}, nil
}
