package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the application configuration.
var Module = fx.Provide(Load)

// Config holds application configuration. Every secret and URL the
// application needs is an explicit field here; nothing reads the
// environment after Load returns.
type Config struct {
	AppName     string
	Environment string
	HTTPAddr    string

	JWTSecret string

	BaseURL  string
	FrontURL string

	LogLevel string

	DB DBConfig

	Email EmailConfig

	Paymee PaymeeConfig
}

type DBConfig struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

type PaymeeConfig struct {
	BaseURL string
	APIKey  string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "invoicing-backend"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":5000"),
		JWTSecret:   strings.TrimSpace(getenv("JWT_SECRET", "")),
		BaseURL:     strings.TrimRight(getenv("BASE_URL", "http://localhost:5000"), "/"),
		FrontURL:    strings.TrimRight(getenv("FRONT_URL", "http://localhost:3000"), "/"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Host:            getenv("DATABASE_HOST", "localhost"),
			Port:            getenv("DATABASE_PORT", "5432"),
			Name:            getenv("DATABASE_NAME", "invoicing"),
			User:            getenv("DATABASE_USER", "postgres"),
			Password:        getenv("DATABASE_PASSWORD", ""),
			SSLMode:         getenv("DATABASE_SSLMODE", "disable"),
			MaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
			MaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
			ConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),
		},
		Email: EmailConfig{
			SMTPHost:     getenv("EMAIL_HOST", "localhost"),
			SMTPPort:     getenvInt("EMAIL_PORT", 587),
			SMTPUsername: getenv("EMAIL_USER", ""),
			SMTPPassword: getenv("EMAIL_PASS", ""),
			SMTPFrom:     getenv("EMAIL_FROM", "InovaSphere <no-reply@inovasphere.tn>"),
		},
		Paymee: PaymeeConfig{
			BaseURL: strings.TrimRight(getenv("PAYMEE_BASE_URL", "https://sandbox.paymee.tn"), "/"),
			APIKey:  strings.TrimSpace(getenv("PAYMEE_API_KEY", "")),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
