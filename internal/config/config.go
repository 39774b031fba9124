package config

import (
	"time"
)

// Config holds everything the process reads from the environment.
// Every field has a default so the server starts against a local
// mongo + redis with no .env at all.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	FolderPath string

	SessionTTL time.Duration

	LoginRateLimit float64
	LoginRateBurst int
}

func Load() *Config {
	return &Config{
		Port: GetEnvAsString("PORT", "5000"),

		DBHost:     GetEnvAsString("DB_HOST", "localhost"),
		DBPort:     GetEnvAsString("DB_PORT", "27017"),
		DBDatabase: GetEnvAsString("DB_DATABASE", "files_manager"),

		RedisHost:     GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		FolderPath: GetEnvAsString("FOLDER_PATH", "/tmp/files_manager"),

		SessionTTL: GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		LoginRateLimit: GetEnvAsFloat("LOGIN_RATE_LIMIT", 1),
		LoginRateBurst: GetEnvAsInt("LOGIN_RATE_BURST", 10),
	}
}

// MongoURI builds the connection string for the metadata store.
func (c *Config) MongoURI() string {
	return "mongodb://" + c.DBHost + ":" + c.DBPort
}

// RedisAddr builds the address for the session store.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
