package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. It is read once at startup and
// never mutated afterwards.
type Config struct {
	HTTPPort string
	Mongo    MongoConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Workflow *WorkflowConfig
	Client   *ClientConfig

	RateLimitPerMinute int  // 0 disables the analyze rate limit
	TrustProxyHeaders  bool // key the rate limit on X-Forwarded-For
}

// MongoConfig points at the question catalog database
type MongoConfig struct {
	URI      string // empty: use the built-in catalog
	Database string
}

// RedisConfig points at the rate limit store
type RedisConfig struct {
	Addr string // empty: rate limiting disabled
}

// CORSConfig holds the values of the Access-Control-Allow-* headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Load reads .env (if present) and the process environment
func Load() *Config {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnv("PORT", "8080"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "wallcheck"),
		},
		Redis: RedisConfig{
			Addr: redisAddr(getEnv("REDIS_URI", "")),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
		},
		Workflow:           DefaultWorkflowConfig(),
		Client:             DefaultClientConfig(),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
		TrustProxyHeaders:  getEnvBool("TRUST_PROXY_HEADERS"),
	}
}

// redisAddr removes a redis:// prefix if present
func redisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
