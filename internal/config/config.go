package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Session secret (kept for parity with the original deployment surface)
	SecretKey string

	// Uploads
	UploadDir        string
	MaxContentLength int64

	// Gemini AI (optional; an empty key degrades the chat
	// gateway instead of preventing startup)
	GeminiAPIKey string

	// Prediction models
	ModelsDir string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		SecretKey:        getEnvOrDefault("SECRET_KEY", ""),
		UploadDir:        getEnvOrDefault("UPLOAD_FOLDER", "./uploads"),
		MaxContentLength: getEnvAsInt64OrDefault("MAX_CONTENT_LENGTH", 16777216), // 16MB
		GeminiAPIKey:     getEnvOrDefault("GEMINI_API_KEY", ""),
		ModelsDir:        getEnvOrDefault("MODELS_DIR", "./saved_models"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GEMINI_API_KEY not set, chatbot will answer with a service-unavailable advisory")
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsInt64OrDefault(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}
