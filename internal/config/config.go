package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	DatabaseURL     string
	JWTSecret       string
	HTTPPort        string
	TokenExpiration time.Duration

	// Generative AI provider
	OpenAIKey     string
	OpenAIModel   string
	AIMaxTokens   int
	AITemperature float64
	AITimeout     time.Duration
	MaxImageBytes int64

	// Uploads
	UploadDir     string
	UploadBaseURL string

	// Password reset / mail
	ResetTokenTTL time.Duration
	MailFrom      string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for development)
	err := godotenv.Load() // Loads .env from the current directory or parent dirs
	if err != nil {
		log.Println("Warning: Could not load .env file. Using environment variables only.", err)
		// Don't fail if .env is not present, might be in production
	}

	port := getEnv("HTTP_PORT", "8080")
	jwtSecret := getEnv("JWT_SECRET", "default-super-secret-key") // CHANGE THIS IN PRODUCTION!
	dbURL := getEnv("DATABASE_URL", "")                           // No default, should fail if not set
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set.")
	}

	openAIKey := getEnv("OPENAI_API_KEY", "")
	if openAIKey == "" {
		log.Fatal("FATAL: OPENAI_API_KEY environment variable is not set.")
	}

	cfg := &Config{
		HTTPPort:        port,
		JWTSecret:       jwtSecret,
		DatabaseURL:     dbURL,
		TokenExpiration: time.Hour * time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)),

		OpenAIKey:     openAIKey,
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		AIMaxTokens:   getEnvInt("AI_MAX_TOKENS", 800),
		AITemperature: getEnvFloat("AI_TEMPERATURE", 0.7),
		AITimeout:     time.Second * time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)),
		MaxImageBytes: int64(getEnvInt("MAX_IMAGE_BYTES", 5<<20)), // 5 MiB

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),

		ResetTokenTTL: time.Minute * time.Duration(getEnvInt("RESET_TOKEN_TTL_MINUTES", 30)),
		MailFrom:      getEnv("MAIL_FROM", "no-reply@storecopy.local"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
	}

	log.Printf("Loaded config: Port=%s, DB_URL=***, TokenExp=%s, Model=%s, AITimeout=%s", cfg.HTTPPort, cfg.TokenExpiration, cfg.OpenAIModel, cfg.AITimeout)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Env variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s', using default %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func getEnvFloat(key string, fallback float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s', using default %f. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}
