package routes

import (
	"context"

	"go-controls/internal/groups/dto"
	"go-controls/internal/groups/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the group picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the group picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "group-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/group-picker/children",
		Summary:     "Get child groups",
		Tags:        []string{"Group Pickers"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "group-member-picker-group-members",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/group-member-picker/group-members",
		Summary:     "List group members",
		Tags:        []string{"Group Pickers"},
	}, m.membersHandler)

	huma.Register(api, huma.Operation{
		OperationID: "group-role-picker-roles",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/group-role-picker/roles",
		Summary:     "List the roles of a group type",
		Tags:        []string{"Group Pickers"},
	}, m.rolesHandler)

	huma.Register(api, huma.Operation{
		OperationID: "group-type-picker-group-types",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/group-type-picker/group-types",
		Summary:     "List group types",
		Tags:        []string{"Group Pickers"},
	}, m.groupTypesHandler)
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Children(ctx, p, services.ChildrenOptions{
		Guid:                     input.Body.Guid,
		RootGroupGuid:            input.Body.RootGroupGuid,
		IncludedGroupTypeGuids:   input.Body.IncludedGroupTypeGuids,
		IncludeInactiveGroups:    input.Body.IncludeInactiveGroups,
		LimitToSchedulingEnabled: input.Body.LimitToSchedulingEnabled,
		LimitToRSVPEnabled:       input.Body.LimitToRSVPEnabled,
	})
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load groups")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) membersHandler(ctx context.Context, input *dto.GroupMembersInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Members(ctx, p, input.Body.GroupGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load group members")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) rolesHandler(ctx context.Context, input *dto.GroupRolesInput) (*dto.ListItemsOutput, error) {
	items, err := m.service.Roles(ctx, input.Body.GroupTypeGuid, input.Body.ExcludeGroupRoleGuids)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load group roles")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) groupTypesHandler(ctx context.Context, input *dto.GroupTypesInput) (*dto.ListItemsOutput, error) {
	items, err := m.service.GroupTypes(ctx, input.Body.GroupTypeGuids, input.Body.IsSortedByName)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load group types")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}
