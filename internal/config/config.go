package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AllowedOrigins []string // CORS allowed origins

	OTPTTL           time.Duration // validity window of an issued code
	OTPSweepInterval time.Duration // janitor pass interval for expired records

	MailProvider   string // "smtp" | "ses"
	MailFrom       string
	MailSenderName string // display name on outgoing mail

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	ProfilePath string // plain-text profile document the assistant answers from
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		OTPTTL:           time.Duration(getEnvInt("OTP_TTL_MINUTES", 5)) * time.Minute,
		OTPSweepInterval: time.Duration(getEnvInt("OTP_SWEEP_MINUTES", 10)) * time.Minute,

		MailProvider:   getEnv("MAIL_PROVIDER", "smtp"),
		MailFrom:       getEnv("MAIL_FROM", "noreply@example.com"),
		MailSenderName: getEnv("MAIL_SENDER_NAME", "Portfolio Q&A"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 1025),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),

		ProfilePath: getEnv("PROFILE_PATH", "./information.txt"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
