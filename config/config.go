package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	TelegramToken    string
	GeminiAPIKey     string
	WebhookURL       string
	Port             int
	DatabaseURL      string
	LanguageDataFile string
	AdminChatID      int64
}

// Load reads configuration from the environment (.env supported).
func Load() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		WebhookURL:       strings.TrimRight(strings.TrimSpace(os.Getenv("WEBHOOK_URL")), "/"),
		Port:             getEnvInt("PORT", 5000),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LanguageDataFile: os.Getenv("LANGUAGE_DATA_FILE"),
		AdminChatID:      getEnvInt64("ADMIN_CHAT_ID", 0),
	}

	if config.LanguageDataFile == "" {
		config.LanguageDataFile = "user_languages.json"
	}

	// Validation: without these tokens the bot cannot do anything useful
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return config, nil
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
