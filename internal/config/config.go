package config

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

type TranslateConfig struct {
	Provider    string // "mymemory" or "google"
	Credentials string // service-account file for the google provider
	Email       string // optional contact email for the mymemory quota
}

type Config struct {
	DBPath      string
	Port        string
	SecretKey   string
	Environment string
	CorsConfig  cors.Options
	Gemini      GeminiConfig
	Translate   TranslateConfig
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DBPath:      getEnv("DB_PATH", "db.sqlite3"),
		Port:        getEnv("PORT", "8080"),
		SecretKey:   getEnv("SECRET_KEY", "change-this-secret-key"),
		Environment: getEnv("ENV", "development"),
		CorsConfig:  CorsConfig(),
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		},
		Translate: TranslateConfig{
			Provider:    getEnv("TRANSLATE_PROVIDER", "mymemory"),
			Credentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			Email:       getEnv("MYMEMORY_EMAIL", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
