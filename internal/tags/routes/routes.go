package routes

import (
	"context"

	"go-controls/internal/tags/dto"
	"go-controls/internal/tags/models"
	"go-controls/internal/tags/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the entity tag list routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the entity tag list routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entity-tag-list-entity-tags",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-tag-list/entity-tags",
		Summary:     "List the tags on an entity",
		Tags:        []string{"Entity Tag List"},
	}, m.entityTagsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "entity-tag-list-available-tags",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-tag-list/available-tags",
		Summary:     "Search tags that can be applied",
		Tags:        []string{"Entity Tag List"},
	}, m.availableTagsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "entity-tag-list-create-personal-tag",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-tag-list/create-personal-tag",
		Summary:     "Create a personal tag",
		Tags:        []string{"Entity Tag List"},
	}, m.createPersonalTagHandler)

	huma.Register(api, huma.Operation{
		OperationID: "entity-tag-list-save-tag",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-tag-list/save-tag",
		Summary:     "Tag an entity",
		Tags:        []string{"Entity Tag List"},
	}, m.saveTagHandler)

	huma.Register(api, huma.Operation{
		OperationID: "entity-tag-list-remove-tag",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-tag-list/remove-tag",
		Summary:     "Remove a tag from an entity",
		Tags:        []string{"Entity Tag List"},
	}, m.removeTagHandler)
}

func toTagBag(tag models.Tag) dto.TagBag {
	return dto.TagBag{
		IdKey:           tag.Guid,
		Name:            tag.Name,
		CategoryGuid:    tag.CategoryGuid,
		BackgroundColor: tag.BackgroundColor,
		IconCssClass:    tag.IconCssClass,
		IsPersonal:      tag.IsPersonal(),
	}
}

func toTagBags(tags []models.Tag) []dto.TagBag {
	out := make([]dto.TagBag, len(tags))
	for i, tag := range tags {
		out[i] = toTagBag(tag)
	}
	return out
}

func (m *Module) entityTagsHandler(ctx context.Context, input *dto.EntityTagsInput) (*dto.TagsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	tags, err := m.service.EntityTags(ctx, p, input.Body.EntityTypeGuid, input.Body.EntityKey)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load entity tags")
	}
	return &dto.TagsOutput{Body: toTagBags(tags)}, nil
}

func (m *Module) availableTagsHandler(ctx context.Context, input *dto.AvailableTagsInput) (*dto.TagsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	tags, err := m.service.AvailableTags(ctx, p, input.Body.EntityTypeGuid, input.Body.Name, input.Body.CategoryGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to search tags")
	}
	return &dto.TagsOutput{Body: toTagBags(tags)}, nil
}

func (m *Module) createPersonalTagHandler(ctx context.Context, input *dto.CreatePersonalTagInput) (*dto.TagOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	tag, err := m.service.CreatePersonalTag(ctx, p, input.Body.EntityTypeGuid, input.Body.Name, input.Body.CategoryGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to create tag")
	}
	return &dto.TagOutput{Body: toTagBag(*tag)}, nil
}

func (m *Module) saveTagHandler(ctx context.Context, input *dto.TagEntityInput) (*dto.TagOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	tag, err := m.service.SaveTag(ctx, p, input.Body.EntityTypeGuid, input.Body.EntityKey, input.Body.TagKey)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to save tag")
	}
	return &dto.TagOutput{Body: toTagBag(*tag)}, nil
}

func (m *Module) removeTagHandler(ctx context.Context, input *dto.TagEntityInput) (*dto.EmptyOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	if err := m.service.RemoveTag(ctx, p, input.Body.EntityTypeGuid, input.Body.EntityKey, input.Body.TagKey); err != nil {
		return nil, handlers.ToHumaError(err, "Failed to remove tag")
	}
	return &dto.EmptyOutput{}, nil
}
