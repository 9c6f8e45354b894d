package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/joho/godotenv"
)

const (
	defaultRetryInterval  = 20 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultLogFile        = "main.log"
	defaultLogMaxSizeMB   = 50
	defaultLogMaxBackups  = 5
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	PracticumEndpoint string
	RetryInterval     time.Duration // Delay between polling iterations
	RequestTimeout    time.Duration // Bound for a single HTTP call
	LogLevel          string
	Environment       string
	LogFile           string // Empty disables the file sink
	LogMaxSizeMB      int
	LogMaxBackups     int
}

// Load reads configuration from environment variables and .env file (if present).
// Every returned error wraps homework.ErrConfiguration.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	for _, req := range []struct {
		name string
		dst  *string
	}{
		{"PRACTICUM_TOKEN", &cfg.PracticumToken},
		{"TELEGRAM_TOKEN", &cfg.TelegramToken},
		{"TELEGRAM_CHAT_ID", &cfg.TelegramChatID},
	} {
		*req.dst = strings.TrimSpace(os.Getenv(req.name))
		if *req.dst == "" {
			return nil, fmt.Errorf("%w: %s is not set", homework.ErrConfiguration, req.name)
		}
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT") // empty selects the client's default

	if cfg.RetryInterval, err = durationEnv("RETRY_INTERVAL", defaultRetryInterval); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = defaultLogFile
	}
	cfg.LogFile = logFile

	if cfg.LogMaxSizeMB, err = intEnv("LOG_MAX_SIZE_MB", defaultLogMaxSizeMB); err != nil {
		return nil, err
	}
	if cfg.LogMaxBackups, err = intEnv("LOG_MAX_BACKUPS", defaultLogMaxBackups); err != nil {
		return nil, err
	}

	return cfg, nil
}

// durationEnv accepts Go durations ("10m") and plain seconds ("600").
func durationEnv(name string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		raw = strconv.Itoa(secs) + "s"
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %w", homework.ErrConfiguration, name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", homework.ErrConfiguration, name)
	}
	return d, nil
}

func intEnv(name string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %w", homework.ErrConfiguration, name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", homework.ErrConfiguration, name)
	}
	return v, nil
}
