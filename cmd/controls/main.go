package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go-controls/pkg/app"
	"go-controls/pkg/config"
	"go-controls/pkg/handlers"
	controlsMiddleware "go-controls/pkg/middleware"
	"go-controls/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "go.uber.org/automaxprocs"
)

const serviceName = "controls"

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	logged := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}
		logged.ServeHTTP(w, r)
	})
}

// corsMiddleware allows the configured front end origins to call the API with credentials
func corsMiddleware(allowed []string) func(http.Handler) http.Handler {
	origins := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		origins[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origins["*"] || origins[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	log.Printf("Controls API %s | CPUs: %d | GOMAXPROCS: %d", version.GetVersionString(), runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	appCtx, err := app.InitializeApp(serviceName)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	modules, err := app.NewModules(appCtx)
	if err != nil {
		log.Fatalf("Failed to create modules: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware(config.GetCORSAllowedOrigins()))
	r.Use(controlsMiddleware.TracingMiddleware(serviceName))

	// A nil *Redis must not become a non-nil HealthChecker
	checkers := map[string]handlers.HealthChecker{"mongodb": appCtx.MongoDB}
	if appCtx.Redis != nil {
		checkers["redis"] = appCtx.Redis
	} else {
		checkers["redis"] = nil
	}
	r.Get("/health", handlers.HealthHandler(checkers))

	apiPrefix := config.GetAPIPrefix()
	humaConfig := app.NewAPIConfig()

	var api huma.API
	if apiPrefix == "" {
		api = humachi.New(r, humaConfig)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			api = humachi.New(prefixRouter, humaConfig)
		})
	}

	for _, mod := range modules {
		mod.Routes(r)
		mod.RegisterUnifiedRoutes(api)
	}
	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	srv := &http.Server{
		Addr:         config.GetHost() + ":" + app.GetPort("8080"),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting controls API server", "addr", srv.Addr, "prefix", apiPrefix, "modules", len(modules))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	stopBackground()
	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)
	slog.Info("Controls API shutdown completed")
}
