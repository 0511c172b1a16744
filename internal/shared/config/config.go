package config

import (
	"os"
	"strconv"
	"strings"

	"staffing-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port                string
	CORSAllowOrigin     []string
	ObjectStoreType     string
	LocalStoreDir       string
	AWSRegion           string
	S3Bucket            string
	S3Prefix            string
	S3Endpoint          string
	SSEKMSKeyID         string
	DatabaseURL         string
	Env                 string
	LogLevel            string
	LogFormat           string
	JWTSecret           string
	ParseRateLimitRPS   float64
	ParseRateLimitBurst int

	warnings []warning
}

type warning struct {
	event  string
	fields map[string]any
}

// LogWarnings writes the problems found while loading. Call it after
// telemetry.Init so the lines use the configured level and format.
func (c Config) LogWarnings() {
	for _, w := range c.warnings {
		telemetry.Warn(w.event, w.fields)
	}
}

// Warnings returns the event names of the problems found while loading.
func (c Config) Warnings() []string {
	out := make([]string, 0, len(c.warnings))
	for _, w := range c.warnings {
		out = append(out, w.event)
	}
	return out
}

// Load reads configuration from environment variables with sensible defaults.
// Nothing is logged here; see LogWarnings.
func Load() Config {
	var warns []warning
	// Best-effort load of local env files for dev convenience.
	warns = append(warns, loadEnvFiles(".env", "cmd/.env")...)

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		warns = append(warns, warning{"config.missing", map[string]any{"key": "DATABASE_URL", "env": env}})
	}

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		CORSAllowOrigin:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType:     normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:       getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:           getEnv("AWS_REGION", ""),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3Prefix:            getEnv("S3_PREFIX", ""),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		SSEKMSKeyID:         getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:         dbURL,
		Env:                 env,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		ParseRateLimitRPS:   getEnvFloat("RATE_LIMIT_PARSE_RPS", 2, &warns),
		ParseRateLimitBurst: getEnvInt("RATE_LIMIT_PARSE_BURST", 10, &warns),
	}
	cfg.warnings = warns
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64, warns *[]warning) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*warns = append(*warns, warning{"config.invalid", map[string]any{"key": key, "type": "float", "error": err.Error()}})
		return def
	}
	return val
}

func getEnvInt(key string, def int, warns *[]warning) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		*warns = append(*warns, warning{"config.invalid", map[string]any{"key": key, "type": "int", "error": err.Error()}})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
