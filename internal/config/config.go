package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Storage    StorageConfig
	Rates      payroll.Rates
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AttendanceConfig holds the attendance-day boundary settings.
// The working day is derived in Location, never from a fixed UTC offset.
type AttendanceConfig struct {
	Timezone string
	Location *time.Location
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "planilla"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: []string{
			getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "24h"),
	}

	tz := getEnv("ATTENDANCE_TIMEZONE", "America/Tegucigalpa")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_TIMEZONE %q: %w", tz, err)
	}
	config.Attendance = AttendanceConfig{
		Timezone: tz,
		Location: loc,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	config.Rates = loadRates()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadRates starts from the statutory defaults and applies per-rate
// overrides, so a rate change never requires touching the calculator.
func loadRates() payroll.Rates {
	rates := payroll.DefaultRates()
	rates.DespalilloPrice = getEnvFloat("PAYROLL_DESPALILLO_PRICE", rates.DespalilloPrice)
	rates.EscogidaPrice = getEnvFloat("PAYROLL_ESCOGIDA_PRICE", rates.EscogidaPrice)
	rates.MonadoPrice = getEnvFloat("PAYROLL_MONADO_PRICE", rates.MonadoPrice)
	rates.SaturdayFactor = getEnvFloat("PAYROLL_SATURDAY_FACTOR", rates.SaturdayFactor)
	rates.SeventhDayFactor = getEnvFloat("PAYROLL_SEVENTH_DAY_FACTOR", rates.SeventhDayFactor)
	rates.OvertimePremium = getEnvFloat("PAYROLL_OVERTIME_PREMIUM", rates.OvertimePremium)
	return rates
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT_EXPIRATION_TIME: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
