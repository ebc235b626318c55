package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	StateStore      string // Session state backend: memory or redis
	RedisAddr       string // Address of the Redis server
	RedisPassword   string // Password for the Redis server
	StateTTLSeconds int    // Lifetime of a stored session state
	BoardRepo       string // Board repository backend: memory or mongo
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "gridpath"),
		StateStore:      getEnvWithDefault("STATE_STORE", BackendMemory),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		StateTTLSeconds: getEnvAsIntWithDefault("STATE_TTL_SECONDS", 3600),
		BoardRepo:       getEnvWithDefault("BOARD_REPO", BackendMemory),
		DBHost:          getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "gridpath"),
	}
}

// MustJWTSecret returns the configured secret or, when none is set, a random
// one that lives as long as the process.
func (c *Config) MustJWTSecret() string {
	if c.JWTSecret != "" {
		return c.JWTSecret
	}

	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("[APP] [FATAL] Generating JWT secret: %v", err)
	}
	log.Printf("[APP] [WARNING] JWT_SECRET is not set, tokens will not survive a restart")
	c.JWTSecret = base64.URLEncoding.EncodeToString(bytes)
	return c.JWTSecret
}

// getEnvAsIntWithDefault retrieves an integer environment variable, logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
