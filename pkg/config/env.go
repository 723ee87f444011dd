package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the value of an environment variable or a default value if not set
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolEnv returns the boolean value of an environment variable or a default value if not set
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetIntEnv returns the integer value of an environment variable or a default value if not set
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetDurationEnv returns a time.Duration parsed from an environment variable (e.g. "5m")
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetAPIPrefix returns the prefix the unified API is mounted under, normalised to "/x" or ""
func GetAPIPrefix() string {
	prefix := strings.TrimSpace(GetEnv("API_PREFIX", "/api/v2"))
	if prefix == "" || prefix == "/" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimSuffix(prefix, "/")
}

// GetHost returns the listen host
func GetHost() string {
	return GetEnv("HOST", "0.0.0.0")
}

// GetJWTSecret returns the HMAC secret used to validate login tokens
func GetJWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "change-me-in-production"))
}

// GetGrantTokenSecret returns the HMAC secret for security grant tokens.
// Falls back to the login secret when unset.
func GetGrantTokenSecret() []byte {
	if secret := os.Getenv("GRANT_TOKEN_SECRET"); secret != "" {
		return []byte(secret)
	}
	return GetJWTSecret()
}

// GetCacheTTL returns the lifetime of cached lookup data
func GetCacheTTL() time.Duration {
	return GetDurationEnv("CACHE_TTL", 10*time.Minute)
}

// GetAssetRoot returns the directory served by the asset manager
func GetAssetRoot() string {
	return GetEnv("ASSET_ROOT", "data/assets")
}

// GetCORSAllowedOrigins returns the list of origins allowed to call the API
func GetCORSAllowedOrigins() []string {
	raw := GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GetReminderRenewalSchedule returns the cron spec for the reminder renewal job
func GetReminderRenewalSchedule() string {
	return GetEnv("REMINDER_RENEWAL_SCHEDULE", "0 */15 * * * *")
}
