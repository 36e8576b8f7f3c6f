package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	POS      POSConfig
	Operator OperatorConfig
	Engine   EngineConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// POSConfig holds the connection settings for the point-of-sale server.
type POSConfig struct {
	BaseURL        string
	Login          string
	Password       string
	TimeoutSeconds int
}

// OperatorConfig holds the single operator account allowed to use the tool.
type OperatorConfig struct {
	Email        string
	PasswordHash string // bcrypt
}

// EngineConfig holds the attendance/reward business constants. Defaults match
// the agreed payroll policy; override per deployment via env.
type EngineConfig struct {
	WorkdayOpenHour  int // shift start before this clamps up (10:00)
	WorkdayCloseHour int // shift end after this clamps down (22:00)
	IngestBeforeHour int // raw records opened before this hour are ignored (07:00)
	FullShiftHours   int
	HalfShiftHours   int
	TaxiAfterHour    int // subsidy requires the shift to end after this hour
	TaxiMinHours     int // ...and to last longer than this many hours
	TaxiAmount       int64
	PerHourCapHours  int
	RoundingStepMins int
}

func Load() (*Config, error) {
	// A missing .env is fine, env vars may come from the runtime.
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
		Name:     getEnv("DB_NAME", "restopay"),
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
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	posTimeout, err := strconv.Atoi(getEnv("POS_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid POS_TIMEOUT_SECONDS: %w", err)
	}

	config.POS = POSConfig{
		BaseURL:        getEnv("POS_BASE_URL", ""),
		Login:          getEnv("POS_LOGIN", ""),
		Password:       getEnv("POS_PASSWORD", ""),
		TimeoutSeconds: posTimeout,
	}

	config.Operator = OperatorConfig{
		Email:        getEnv("OPERATOR_EMAIL", ""),
		PasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
	}

	engine, err := loadEngine()
	if err != nil {
		return nil, err
	}
	config.Engine = engine

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadEngine() (EngineConfig, error) {
	engine := EngineConfig{}

	intFields := []struct {
		dst      *int
		key      string
		fallback string
	}{
		{&engine.WorkdayOpenHour, "ENGINE_WORKDAY_OPEN_HOUR", "10"},
		{&engine.WorkdayCloseHour, "ENGINE_WORKDAY_CLOSE_HOUR", "22"},
		{&engine.IngestBeforeHour, "ENGINE_INGEST_BEFORE_HOUR", "7"},
		{&engine.FullShiftHours, "ENGINE_FULL_SHIFT_HOURS", "10"},
		{&engine.HalfShiftHours, "ENGINE_HALF_SHIFT_HOURS", "5"},
		{&engine.TaxiAfterHour, "ENGINE_TAXI_AFTER_HOUR", "20"},
		{&engine.TaxiMinHours, "ENGINE_TAXI_MIN_HOURS", "6"},
		{&engine.PerHourCapHours, "ENGINE_PER_HOUR_CAP_HOURS", "12"},
		{&engine.RoundingStepMins, "ENGINE_ROUNDING_STEP_MINUTES", "30"},
	}
	for _, f := range intFields {
		v, err := strconv.Atoi(getEnv(f.key, f.fallback))
		if err != nil {
			return EngineConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}

	taxiAmount, err := strconv.ParseInt(getEnv("ENGINE_TAXI_AMOUNT", "150"), 10, 64)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("invalid ENGINE_TAXI_AMOUNT: %w", err)
	}
	engine.TaxiAmount = taxiAmount

	return engine, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.POS.BaseURL == "" {
		return fmt.Errorf("POS_BASE_URL is required")
	}
	if c.POS.Login == "" {
		return fmt.Errorf("POS_LOGIN is required")
	}
	if c.POS.Password == "" {
		return fmt.Errorf("POS_PASSWORD is required")
	}
	if c.Operator.Email == "" {
		return fmt.Errorf("OPERATOR_EMAIL is required")
	}
	if c.Operator.PasswordHash == "" {
		return fmt.Errorf("OPERATOR_PASSWORD_HASH is required")
	}
	if c.Engine.HalfShiftHours >= c.Engine.FullShiftHours {
		return fmt.Errorf("ENGINE_HALF_SHIFT_HOURS must be below ENGINE_FULL_SHIFT_HOURS")
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
