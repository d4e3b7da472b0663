package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-press/inkwell/pkg/jwtx"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for session tokens (default: inkwell-blog)
	SessionSecret []byte        // Required in prod: HS256 signing secret, >= 32 bytes
	SessionTTL    time.Duration // Optional: session token lifetime (default: 1h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./blog.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	AssetDriver    string // Optional: asset storage driver (local, s3) (default: local)
	UploadDir      string // Optional: directory for the local asset driver (default: ./uploads)
	MaxUploadBytes int64  // Optional: multipart request cap in bytes (default: 8 MiB)

	S3Region    string // Required for s3 driver
	S3Bucket    string // Required for s3 driver
	S3AccessKey string // Required for s3 driver
	S3SecretKey string // Required for s3 driver
	S3Endpoint  string // Optional: custom S3 endpoint (MinIO and friends)
	S3KeyPrefix string // Optional: object key prefix

	Origin              string        // Optional: allowed CORS origin (default: none, CORS disabled)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:              getEnvOrDefault("BLOG_ISSUER", "inkwell-blog"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:        getEnvOrDefault("BLOG_DATABASE_FILE", "blog.db"),
		PepperFile:          getEnvOrDefault("BLOG_PEPPER_FILE", "pepper"),
		AssetDriver:         getEnvOrDefault("ASSET_DRIVER", "local"),
		UploadDir:           getEnvOrDefault("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:      int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 8<<20)),
		S3Region:            os.Getenv("S3_REGION"),
		S3Bucket:            os.Getenv("S3_BUCKET"),
		S3AccessKey:         os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:         os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:          os.Getenv("S3_ENDPOINT"),
		S3KeyPrefix:         os.Getenv("S3_KEY_PREFIX"),
		Origin:              os.Getenv("ORIGIN"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	secret, err := loadSessionSecret()
	if err != nil {
		return Config{}, err
	}
	cfg.SessionSecret = secret

	return cfg, nil
}

// loadSessionSecret resolves the token signing secret from the environment
// or a secret file. It never comes from source.
func loadSessionSecret() ([]byte, error) {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return []byte(v), nil
	}

	if file := os.Getenv("SESSION_SECRET_FILE"); file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		secret := []byte(strings.TrimSpace(string(raw)))
		if len(secret) == 0 {
			return nil, fmt.Errorf("session secret file %s is empty", file)
		}
		return secret, nil
	}

	// No secret configured; Application.New decides whether that is fatal.
	return nil, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
