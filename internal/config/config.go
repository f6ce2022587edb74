package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

type Config struct {
	ExtensionID    string
	ServerPort     int
	APIKey         string // API key required by the gateway when set
	RateLimit      int    // requests per window per remote host, 0 disables
	RateWindowSecs int
	RulesPath      string // gitleaks rules for the gateway secret scan
	ExtensionsDir  string // where `install` writes the nmmcp.json manifest
}

func NewConfig() *Config {
	return &Config{
		ExtensionID:    uuid.NewString(),
		ServerPort:     getEnvAsInt("NMEXT_PORT", 11436),
		APIKey:         getEnv("NMEXT_API_KEY", ""),
		RateLimit:      getEnvAsInt("NMEXT_RATE_LIMIT", 60),
		RateWindowSecs: getEnvAsInt("NMEXT_RATE_WINDOW_SECS", 60),
		RulesPath:      getEnv("NMEXT_RULES", "gitleaks.toml"),
		ExtensionsDir:  getEnv("NMEXT_EXTENSIONS_DIR", defaultExtensionsDir()),
	}
}

// defaultExtensionsDir is where the neonmachines host looks for user
// extensions.
func defaultExtensionsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "extensions")
	}
	return filepath.Join(home, ".neonmachines", "extensions")
}

// Helper function to read environment variables with defaults
func getEnvAsInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
