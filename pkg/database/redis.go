package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go-controls/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Redis struct {
	Client *redis.Client
	tracer trace.Tracer
}

func NewRedis(ctx context.Context) (*Redis, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", opt.Addr)

	r := &Redis{Client: client}

	// Only initialize tracer if telemetry is enabled
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		r.tracer = otel.Tracer("redis-client")
	}

	return r, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

// traced runs fn inside a span when tracing is enabled
func (r *Redis) traced(ctx context.Context, name string, attrs []attribute.KeyValue, fn func(context.Context) error) error {
	if r.tracer == nil {
		return fn(ctx)
	}

	ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	err := fn(ctx)
	if err != nil && err != redis.Nil {
		span.RecordError(err)
	}
	return err
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	var result string
	err := r.traced(ctx, "redis.get", []attribute.KeyValue{
		attribute.String("redis.key", key),
		attribute.String("redis.operation", "GET"),
	}, func(ctx context.Context) error {
		var err error
		result, err = r.Client.Get(ctx, key).Result()
		return err
	})
	return result, err
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	return r.traced(ctx, "redis.delete", []attribute.KeyValue{
		attribute.StringSlice("redis.keys", keys),
		attribute.String("redis.operation", "DEL"),
	}, func(ctx context.Context) error {
		return r.Client.Del(ctx, keys...).Err()
	})
}

func (r *Redis) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.Client.Ping(ctx).Err()
}

// SetJSON stores a JSON-serializable object in Redis with expiration
func (r *Redis) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return r.traced(ctx, "redis.set_json", []attribute.KeyValue{
		attribute.String("redis.key", key),
		attribute.String("redis.operation", "SET_JSON"),
		attribute.Int("redis.data_size", len(jsonData)),
	}, func(ctx context.Context) error {
		return r.Client.Set(ctx, key, jsonData, expiration).Err()
	})
}

// GetJSON retrieves and unmarshals a JSON object from Redis.
// A missing key is reported as redis.Nil.
func (r *Redis) GetJSON(ctx context.Context, key string, dest interface{}) error {
	jsonData, err := r.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(jsonData), dest); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}
