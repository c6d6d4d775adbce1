package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string

	// Optional: OTP store falls back to memory when empty
	RedisAddr     string
	RedisPassword string

	GeminiAPIKey string

	AdzunaAppID  string
	AdzunaAppKey string
	JoobleAPIKey string
	JoobleHost   string

	MailSender          string
	GmailCredentialFile string
	GmailTokenFile      string
}

// Load reads .env (if present) and builds the config with sane local defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	return &Config{
		Port:        getenv("PORT", "5000"),
		DatabaseDSN: getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobtracker port=5432 sslmode=disable"),
		JWTSecret:   getenv("JWT_SECRET_KEY", "supersecretkey"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		AdzunaAppID:  getenv("ADZUNA_APP_ID", "10b2419a"),
		AdzunaAppKey: os.Getenv("APP_KEY"),
		JoobleAPIKey: os.Getenv("JOOBLE_API_KEY"),
		JoobleHost:   getenv("JOOBLE_HOST", "jooble.org"),

		MailSender:          os.Getenv("MAIL_SENDER"),
		GmailCredentialFile: getenv("GMAIL_CREDENTIAL_FILE", "credential.json"),
		GmailTokenFile:      getenv("GMAIL_TOKEN_FILE", "token.json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
