package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	robfig "github.com/robfig/cron/v3"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	S3         S3Config
	JWT        JWTConfig
	Latency    LatencyConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
}

// StorageConfig selects the key-value backend holding the snapshot.
type StorageConfig struct {
	Driver     string
	BasePath   string
	SQLitePath string
	Key        string
	QuotaBytes int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// LatencyConfig bounds the delay added before each service call.
type LatencyConfig struct {
	Min time.Duration
	Max time.Duration
}

type AttendanceConfig struct {
	LateAfter string
	ShiftEnd  string
}

type CronConfig struct {
	Enabled       bool
	AutoCloseSpec string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
		slog.Debug("No .env file found, using environment only")
	}

	var errs []error
	config := &Config{}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "prakura-hrms"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		Port:           getEnvInt("APP_PORT", 8080, &errs),
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("TIMEZONE", "Asia/Kolkata"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}

	config.Storage = StorageConfig{
		Driver:     getEnv("STORAGE_DRIVER", "local"),
		BasePath:   getEnv("STORAGE_BASE_PATH", "./data"),
		SQLitePath: getEnv("STORAGE_SQLITE_PATH", "./data/prakura.db"),
		Key:        getEnv("STORAGE_KEY", "prakura_hrms_db"),
		QuotaBytes: getEnvInt("STORAGE_QUOTA_BYTES", 5*1024*1024, &errs),
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432, &errs),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "prakura_hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 4, &errs)),
		MinConns: int32(getEnvInt("DB_MIN_CONNS", 1, &errs)),
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0, &errs),
	}

	config.S3 = S3Config{
		Bucket:          getEnv("S3_BUCKET", ""),
		Prefix:          getEnv("S3_PREFIX", ""),
		Region:          getEnv("S3_REGION", "ap-south-1"),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", false, &errs),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", 8*time.Hour, &errs),
	}

	config.Latency = LatencyConfig{
		Min: getEnvDuration("SIMULATED_LATENCY_MIN", 0, &errs),
		Max: getEnvDuration("SIMULATED_LATENCY_MAX", 0, &errs),
	}

	config.Attendance = AttendanceConfig{
		LateAfter: getEnv("ATTENDANCE_LATE_AFTER", "09:30:00"),
		ShiftEnd:  getEnv("ATTENDANCE_SHIFT_END", "18:00:00"),
	}

	config.Cron = CronConfig{
		Enabled:       getEnvBool("CRON_ENABLED", true, &errs),
		AutoCloseSpec: getEnv("CRON_AUTO_CLOSE_SPEC", "5 0 * * *"),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	switch c.Storage.Driver {
	case "memory", "local":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("STORAGE_SQLITE_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.QuotaBytes < 0 {
		return fmt.Errorf("STORAGE_QUOTA_BYTES must not be negative")
	}
	if c.Latency.Min < 0 || c.Latency.Max < c.Latency.Min {
		return fmt.Errorf("SIMULATED_LATENCY_MIN/MAX must satisfy 0 <= min <= max")
	}
	for name, v := range map[string]string{
		"ATTENDANCE_LATE_AFTER": c.Attendance.LateAfter,
		"ATTENDANCE_SHIFT_END":  c.Attendance.ShiftEnd,
	} {
		if _, err := time.Parse("15:04:05", v); err != nil {
			return fmt.Errorf("%s must be HH:MM:SS, got %q", name, v)
		}
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	if c.Cron.Enabled {
		if _, err := robfig.ParseStandard(c.Cron.AutoCloseSpec); err != nil {
			return fmt.Errorf("invalid CRON_AUTO_CLOSE_SPEC: %w", err)
		}
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

// Location returns the configured time zone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return d
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
