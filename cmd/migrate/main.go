package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-controls/pkg/app"
	pkgMigrations "go-controls/pkg/migrations"

	// Import all migration files to register them
	localMigrations "go-controls/migrations"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status")
		steps   = flag.Int("steps", 1, "Number of migrations to roll back (down)")
		dryRun  = flag.Bool("dry-run", false, "List pending migrations without running them")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	appCtx, err := app.InitializeApp("controls-migrate")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	if appCtx.MongoDB == nil {
		log.Fatal("MongoDB is not reachable, check MONGODB_URI")
	}

	runner := pkgMigrations.NewRunner(appCtx.MongoDB.Database)
	localMigrations.RegisterAll(runner)

	switch *command {
	case "up":
		if *dryRun {
			pending, err := runner.Pending(ctx)
			if err != nil {
				log.Fatalf("Failed to list pending migrations: %v", err)
			}
			for _, m := range pending {
				fmt.Printf("pending  %s - %s\n", m.Version, m.Description)
			}
			return
		}
		if err := runner.Run(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("All migrations completed")

	case "down":
		if *dryRun {
			fmt.Printf("Would roll back %d migration(s)\n", *steps)
			return
		}
		if err := runner.Rollback(ctx, *steps); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		fmt.Println("Rollback completed")

	case "status":
		entries, err := runner.Status(ctx)
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		printStatus(entries)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", *command)
		os.Exit(2)
	}
}

func printStatus(entries []pkgMigrations.StatusEntry) {
	fmt.Println("Migration status")
	fmt.Println(strings.Repeat("=", 80))

	applied := 0
	for _, e := range entries {
		state := "pending"
		at := ""
		if e.Applied {
			applied++
			state = "applied"
			at = " (at " + e.AppliedAt.Format("2006-01-02 15:04:05") + ")"
		}
		if e.Drifted {
			state = "drifted"
		}
		fmt.Printf("%-8s %s - %s%s\n", state, e.Version, e.Description, at)
	}
	fmt.Printf("\nTotal: %d migrations (%d applied, %d pending)\n", len(entries), applied, len(entries)-applied)
}
