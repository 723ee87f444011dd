package migrations

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsCollection = "_migrations"

// Migration is the record kept for an applied migration
type Migration struct {
	Version     string    `bson:"version"`     // e.g. "003_create_tag_indexes"
	Description string    `bson:"description"`
	AppliedAt   time.Time `bson:"applied_at"`
	Checksum    string    `bson:"checksum"`
}

// MigrationFunc defines a migration function signature
type MigrationFunc func(ctx context.Context, db *mongo.Database) error

// RegisteredMigration holds migration metadata and functions
type RegisteredMigration struct {
	Version     string
	Description string
	Up          MigrationFunc
	Down        MigrationFunc // optional
}

// StatusEntry describes one registered migration and whether it ran
type StatusEntry struct {
	Version     string
	Description string
	Applied     bool
	AppliedAt   time.Time
	Drifted     bool // recorded checksum differs from the registered migration
}

// Runner manages database migrations
type Runner struct {
	db         *mongo.Database
	collection *mongo.Collection
	migrations []RegisteredMigration
}

// NewRunner creates a new migration runner
func NewRunner(db *mongo.Database) *Runner {
	return &Runner{
		db:         db,
		collection: db.Collection(migrationsCollection),
	}
}

// Register adds a migration to the runner
func (r *Runner) Register(migration RegisteredMigration) {
	r.migrations = append(r.migrations, migration)
}

// Pending returns the registered migrations that have not been applied
func (r *Runner) Pending(ctx context.Context) ([]RegisteredMigration, error) {
	applied, err := r.appliedByVersion(ctx)
	if err != nil {
		return nil, err
	}
	var pending []RegisteredMigration
	for _, m := range r.migrations {
		if _, ok := applied[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Run executes all pending migrations in registration order
func (r *Runner) Run(ctx context.Context) error {
	if err := r.ensureMigrationsIndex(ctx); err != nil {
		return fmt.Errorf("failed to create migrations index: %w", err)
	}

	pending, err := r.Pending(ctx)
	if err != nil {
		return err
	}

	for _, migration := range pending {
		slog.InfoContext(ctx, "Running migration", "version", migration.Version, "description", migration.Description)
		err := r.inSession(ctx, func(sc mongo.SessionContext) error {
			if err := migration.Up(sc, r.db); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Version, err)
			}
			record := Migration{
				Version:     migration.Version,
				Description: migration.Description,
				AppliedAt:   time.Now().UTC(),
				Checksum:    calculateChecksum(migration),
			}
			if _, err := r.collection.InsertOne(sc, record); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "Migration completed", "version", migration.Version)
	}
	return nil
}

// Rollback rolls back the last n applied migrations
func (r *Runner) Rollback(ctx context.Context, steps int) error {
	applied, err := r.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}
	if steps > len(applied) {
		steps = len(applied)
	}

	registered := make(map[string]RegisteredMigration, len(r.migrations))
	for _, m := range r.migrations {
		registered[m.Version] = m
	}

	for i := len(applied) - 1; i >= len(applied)-steps; i-- {
		version := applied[i].Version
		migration, ok := registered[version]
		if !ok {
			return fmt.Errorf("migration %s not found in registered migrations", version)
		}
		if migration.Down == nil {
			slog.WarnContext(ctx, "Migration has no rollback, skipping", "version", version)
			continue
		}

		slog.InfoContext(ctx, "Rolling back migration", "version", version)
		err := r.inSession(ctx, func(sc mongo.SessionContext) error {
			if err := migration.Down(sc, r.db); err != nil {
				return fmt.Errorf("rollback %s failed: %w", version, err)
			}
			if _, err := r.collection.DeleteOne(sc, bson.M{"version": version}); err != nil {
				return fmt.Errorf("failed to remove migration record %s: %w", version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Status lists every registered migration with its applied state
func (r *Runner) Status(ctx context.Context) ([]StatusEntry, error) {
	applied, err := r.appliedByVersion(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]StatusEntry, 0, len(r.migrations))
	for _, m := range r.migrations {
		entry := StatusEntry{Version: m.Version, Description: m.Description}
		if record, ok := applied[m.Version]; ok {
			entry.Applied = true
			entry.AppliedAt = record.AppliedAt
			entry.Drifted = record.Checksum != calculateChecksum(m)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Runner) inSession(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)
	return mongo.WithSession(ctx, session, fn)
}

func (r *Runner) ensureMigrationsIndex(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *Runner) appliedByVersion(ctx context.Context) (map[string]Migration, error) {
	applied, err := r.getAppliedMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}
	byVersion := make(map[string]Migration, len(applied))
	for _, m := range applied {
		byVersion[m.Version] = m
	}
	return byVersion, nil
}

func (r *Runner) getAppliedMigrations(ctx context.Context) ([]Migration, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "version", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var migrations []Migration
	if err := cursor.All(ctx, &migrations); err != nil {
		return nil, err
	}
	return migrations, nil
}

// calculateChecksum fingerprints a migration's identity
func calculateChecksum(migration RegisteredMigration) string {
	sum := sha256.Sum256([]byte(migration.Version + "\x00" + migration.Description))
	return hex.EncodeToString(sum[:])
}
