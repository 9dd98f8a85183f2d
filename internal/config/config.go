package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendMemory     = "memory"
	BackendFile       = "file"
	BackendRelational = "relational"
)

type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
}

type StorageConfig struct {
	Backend       string
	LogFile       string
	SeedUsersFile string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type ServerConfig struct {
	Host    string
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Storage: StorageConfig{
			Backend:       strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
			LogFile:       getEnv("LOG_FILE", "access_logs.json"),
			SeedUsersFile: getEnv("SEED_USERS_FILE", ""),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "access_logs"),
		},
		Server: ServerConfig{
			Host:    getEnv("HOST", "0.0.0.0"),
			Port:    getEnv("PORT", "5000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config
}

// Validate checks the values that select an implementation at startup.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile:
	case BackendRelational:
		switch c.Database.Driver {
		case "mysql", "postgres", "sqlite":
		default:
			return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage backend: %s", c.Storage.Backend)
	}

	if c.Storage.Backend == BackendFile && c.Storage.LogFile == "" {
		return fmt.Errorf("LOG_FILE is required for the file backend")
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
