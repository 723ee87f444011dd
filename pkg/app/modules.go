package app

import (
	"fmt"

	"go-controls/internal/accounts"
	"go-controls/internal/assets"
	"go-controls/internal/badges"
	"go-controls/internal/categories"
	"go-controls/internal/definedvalues"
	"go-controls/internal/entitytypes"
	"go-controls/internal/grants"
	"go-controls/internal/groups"
	"go-controls/internal/locations"
	"go-controls/internal/media"
	"go-controls/internal/mergefields"
	"go-controls/internal/pages"
	"go-controls/internal/reminders"
	"go-controls/internal/tags"
	"go-controls/internal/workflows"
	"go-controls/pkg/config"
	"go-controls/pkg/module"
	"go-controls/pkg/version"

	"github.com/danielgtaylor/huma/v2"
)

// NewModules builds every control module from the shared dependencies
func NewModules(appCtx *AppContext) ([]module.Module, error) {
	if appCtx.MongoDB == nil {
		return nil, fmt.Errorf("control modules need MongoDB")
	}
	db, guard := appCtx.MongoDB, appCtx.Guard

	entityTypes := entitytypes.NewModule(db, appCtx.Cache, guard)
	entities := entityTypes.GetService()

	mergeFields, err := mergefields.NewModule()
	if err != nil {
		return nil, fmt.Errorf("failed to create merge field module: %w", err)
	}
	assetManager, err := assets.NewModule(config.GetAssetRoot(), guard)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset manager module: %w", err)
	}

	return []module.Module{
		entityTypes,
		definedvalues.NewModule(db, appCtx.Cache, guard),
		categories.NewModule(db, guard),
		accounts.NewModule(db, guard),
		groups.NewModule(db, appCtx.Cache, guard),
		locations.NewModule(db, guard),
		tags.NewModule(db, entities, guard),
		badges.NewModule(db, appCtx.Cache, entities, guard),
		reminders.NewModule(db, entities, guard),
		mergeFields,
		media.NewModule(db, guard),
		assetManager,
		pages.NewModule(db, guard),
		workflows.NewModule(db, guard),
		grants.NewModule(guard),
	}, nil
}

// NewAPIConfig returns the Huma configuration shared by the server and the OpenAPI export
func NewAPIConfig() huma.Config {
	humaConfig := huma.DefaultConfig("Controls API", version.Version)
	humaConfig.Info.Description = "Picker and editor endpoints backing the web UI controls"
	prefix := config.GetAPIPrefix()
	humaConfig.Servers = []*huma.Server{
		{URL: config.GetEnv("PUBLIC_URL", "http://localhost:8080") + prefix, Description: "API server"},
	}
	return humaConfig
}
