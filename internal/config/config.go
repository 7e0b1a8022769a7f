package config

import "os"

// Config holds all application configuration
type Config struct {
	Port     string
	MongoURL string // MongoDB connection string (required)
	DBName   string // MongoDB database name (required)

	// Anthropic LLM configuration
	AnthropicAPIKey string
	AnthropicModel  string

	// OpenWeatherMap configuration
	OpenWeatherKey string

	// CORS configuration, comma-separated origin list
	CORSOrigins string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8000"),
		MongoURL: getEnv("MONGO_URL", ""),
		DBName:   getEnv("DB_NAME", "dincharya"),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-7-sonnet-20250219"),

		OpenWeatherKey: getEnv("OPENWEATHER_KEY", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
