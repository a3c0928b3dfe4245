package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64

	Settings
}

// Settings are the optional knobs; every field has a default.
type Settings struct {
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RetryPeriod    string        `env:"RETRY_PERIOD" env-default:"10m"` // duration or cron expression
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
	TelegramAPIURL string        `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"debug"`
	LogFile        string        `env:"LOG_FILE" env-default:"program.log"` // "-" disables the file
	Environment    string        `env:"ENVIRONMENT" env-default:"development"`
}

// Load reads configuration from environment variables and .env file (if present).
// A missing secret yields a *homework.Error of kind KindConfig naming every absent variable.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, homework.Errorf(homework.KindConfig, "required environment variables are not set: %s", strings.Join(missing, ", "))
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, homework.Wrap(homework.KindConfig, err, "invalid TELEGRAM_CHAT_ID")
	}

	if err := cleanenv.ReadEnv(&cfg.Settings); err != nil {
		return nil, homework.Wrap(homework.KindConfig, err, "invalid settings")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	return cfg, nil
}
