package platform

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-supplied setting. Secrets are required and
// the process refuses to start without them; everything else has a default.
type Config struct {
	Port string

	// MySQL
	SQLHost     string
	SQLPort     string
	SQLUser     string
	SQLPassword string
	SQLDBName   string

	// Model provider
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Auth
	AccessSecret string

	// SMTP (optional, welcome mail is skipped when host is empty)
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	CORSOrigin string
}

func LoadConfig() *Config {
	// .env is optional, real deployments set the environment directly
	godotenv.Load()

	return &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		SQLHost:     getEnvOrDefault("SQL_HOST", "127.0.0.1"),
		SQLPort:     getEnvOrDefault("SQL_PORT", "3306"),
		SQLUser:     getEnvOrDefault("SQL_USER", "root"),
		SQLPassword: os.Getenv("SQL_PASSWORD"),
		SQLDBName:   getEnvOrDefault("SQL_DBNAME", "pagegen"),

		LLMBaseURL: getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  mustGetEnv("LLM_API_KEY"),
		LLMModel:   getEnvOrDefault("LLM_MODEL", "gpt-4o"),

		AccessSecret: mustGetEnv("ACCESS_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnvOrDefault("SMTP_FROM", "noreply@pagegen.app"),

		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "http://localhost"),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
