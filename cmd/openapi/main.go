package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"go-controls/pkg/app"
	"go-controls/pkg/cache"
	"go-controls/pkg/config"
	"go-controls/pkg/database"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

func main() {
	output := flag.String("output", "", "Write the document to this file instead of stdout")
	format := flag.String("format", "json", "Output format: json or yaml")
	flag.Parse()

	api, err := buildAPI()
	if err != nil {
		log.Fatalf("Failed to build API: %v", err)
	}

	var data []byte
	switch *format {
	case "json":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	case "yaml":
		data, err = yaml.Marshal(api.OpenAPI())
	default:
		log.Fatalf("Unknown format: %s", *format)
	}
	if err != nil {
		log.Fatalf("Failed to encode OpenAPI document: %v", err)
	}

	if *output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("OpenAPI document written to %s", *output)
}

// buildAPI registers every module against dependencies that never touch the network.
// The mongo driver connects lazily, so no server is needed.
func buildAPI() (huma.API, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(context.Background())

	// Keep the export from creating the asset directory of a real deployment
	if os.Getenv("ASSET_ROOT") == "" {
		os.Setenv("ASSET_ROOT", os.TempDir())
	}

	authorizer, err := security.NewMemoryAuthorizer()
	if err != nil {
		return nil, err
	}

	appCtx := &app.AppContext{
		MongoDB: &database.MongoDB{Client: client, Database: client.Database("controls")},
		Cache:   cache.New(nil, config.GetCacheTTL()),
		Guard:   security.NewGuard(nil, security.NewGrantCodec(config.GetGrantTokenSecret()), authorizer),
	}
	modules, err := app.NewModules(appCtx)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	api := humachi.New(router, app.NewAPIConfig())
	for _, mod := range modules {
		mod.RegisterUnifiedRoutes(api)
	}
	return api, nil
}
