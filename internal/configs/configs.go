package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"project-hub.com/project-hub/internal/logging"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	RateLimit              int
	RedisEnabled           bool
	RedisAddr              string
	SMSTokenKey            string
	SMSMaxInFlight         int
	SMSWorkers             int
	SMSQueueSize           int
	SMSSweepSchedule       string
	SMSSweepBatch          int
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogFile                string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:         strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "project_hub.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		RedisEnabled:           getEnvAsBool("REDIS_ENABLED", false),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		SMSTokenKey:            getEnv("SMS_TOKEN_KEY", "sms_send_tokens"),
		SMSMaxInFlight:         getEnvAsInt("SMS_MAX_IN_FLIGHT", 5),
		SMSWorkers:             getEnvAsInt("SMS_WORKERS", 2),
		SMSQueueSize:           getEnvAsInt("SMS_QUEUE_SIZE", 50),
		SMSSweepSchedule:       getEnv("SMS_SWEEP_SCHEDULE", "@every 30s"),
		SMSSweepBatch:          getEnvAsInt("SMS_SWEEP_BATCH", 50),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFile:                getEnv("LOG_FILE", ""),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		logging.Logger.Fatal("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		logging.Logger.Fatalf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}
	if cfg.DatabaseDSN == "" {
		logging.Logger.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		logging.Logger.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.SMSMaxInFlight <= 0 {
		logging.Logger.Fatal("SMS_MAX_IN_FLIGHT must be greater than 0")
	}
	if cfg.SMSWorkers <= 0 {
		logging.Logger.Fatal("SMS_WORKERS must be greater than 0")
	}
	if cfg.SMSQueueSize <= 0 {
		logging.Logger.Fatal("SMS_QUEUE_SIZE must be greater than 0")
	}
	if cfg.SMSSweepBatch <= 0 {
		logging.Logger.Fatal("SMS_SWEEP_BATCH must be greater than 0")
	}
	if strings.TrimSpace(cfg.SMSSweepSchedule) == "" {
		logging.Logger.Fatal("SMS_SWEEP_SCHEDULE must not be empty")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			logging.Logger.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logging.Logger.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
