package app

import (
	"context"
	"log"
	"log/slog"

	"go-controls/pkg/cache"
	"go-controls/pkg/config"
	"go-controls/pkg/database"
	"go-controls/pkg/logging"
	"go-controls/pkg/middleware"
	"go-controls/pkg/security"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	MongoDB          *database.MongoDB
	Redis            *database.Redis
	Cache            *cache.Cache
	Authorizer       *security.Authorizer
	Guard            *security.Guard
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp initializes common application dependencies
func InitializeApp(serviceName string) (*AppContext, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	ctx := context.Background()

	telemetryManager := logging.NewTelemetryManager(serviceName)
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
		// Continue without telemetry rather than failing
	}

	mongodb, err := database.NewMongoDB(ctx, serviceName)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
	}

	redis, err := database.NewRedis(ctx)
	if err != nil {
		slog.Error("Failed to connect to Redis, cache stays process-local", "error", err)
	} else {
		slog.Info("Connected to Redis")
	}

	// A nil *Redis must not become a non-nil Backend
	var backend cache.Backend
	if redis != nil {
		backend = redis
	}
	lookupCache := cache.New(backend, config.GetCacheTTL())

	authorizer, err := newAuthorizer(mongodb)
	if err != nil {
		return nil, err
	}

	authMiddleware := middleware.NewAuthMiddleware(middleware.NewHMACValidator(config.GetJWTSecret()))
	guard := security.NewGuard(authMiddleware, security.NewGrantCodec(config.GetGrantTokenSecret()), authorizer)

	appCtx := &AppContext{
		MongoDB:          mongodb,
		Redis:            redis,
		Cache:            lookupCache,
		Authorizer:       authorizer,
		Guard:            guard,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}

	// Register shutdown functions
	if mongodb != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, mongodb.Close)
	}
	if redis != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(ctx context.Context) error {
			return redis.Close()
		})
	}
	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)

	return appCtx, nil
}

// newAuthorizer persists policies in MongoDB when it is available and falls
// back to in-memory default policies otherwise.
func newAuthorizer(mongodb *database.MongoDB) (*security.Authorizer, error) {
	if mongodb == nil {
		slog.Warn("MongoDB unavailable, using in-memory authorization policies")
		authorizer, err := security.NewMemoryAuthorizer()
		if err != nil {
			return nil, err
		}
		return authorizer, authorizer.SeedDefaults()
	}
	return security.NewAuthorizer(mongodb.Client, mongodb.Database.Name())
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}

	slog.Info("Application shutdown completed", "service", a.ServiceName)
	return nil
}

// GetPort returns the port from environment or default
func GetPort(defaultPort string) string {
	return config.GetEnv("PORT", defaultPort)
}
