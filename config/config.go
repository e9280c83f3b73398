package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string // optional; form sessions fall back to memory without it
	JWTSecret   string

	AdminPassword string

	// Outbound mail. SMTP wins when host and user are both present;
	// otherwise SendGrid when an API key is set; otherwise the intake
	// endpoint runs in development mode and only logs leads.
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	SendGridAPIKey string
	EmailFrom      string

	GeminiAPIKey     string
	GeminiImageModel string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:        get("PORT", "8080"),
		DatabaseURL: get("DATABASE_URL", ""),
		JWTSecret:   must("JWT_SECRET"),

		AdminPassword: get("ADMIN_PASSWORD", ""),

		SMTPHost:       get("SMTP_HOST", ""),
		SMTPPort:       get("SMTP_PORT", "587"),
		SMTPUser:       get("SMTP_USER", ""),
		SMTPPassword:   get("SMTP_PASSWORD", ""),
		SendGridAPIKey: get("SENDGRID_API_KEY", ""),
		EmailFrom:      get("EMAIL_FROM", "leads@buckscountyfence.com"),

		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiImageModel: get("GEMINI_IMAGE_MODEL", "gemini-3-pro-image-preview"),
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}
