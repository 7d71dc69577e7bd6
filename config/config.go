package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"denoise-bench/internal/infrastructure/system"
)

type Config struct {
	Threads        int    // запрошенное число потоков для бэкенда
	Repeat         int    // сколько раз применить фильтр
	LogLevel       string // уровень zerolog
	TelegramToken  string
	TelegramChatID int64
}

// NotifyEnabled true, если заданы токен и чат Telegram
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Threads:       system.DefaultThreads(),
		Repeat:        1,
		LogLevel:      os.Getenv("DENOISE_LOG_LEVEL"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	// Число потоков не проверяется здесь: ноль и отрицательные значения отклоняет бэкенд
	if v, ok := lookup("DENOISE_THREADS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("DENOISE_THREADS: %q is not an integer", v)
		}
		cfg.Threads = n
	}

	if v, ok := lookup("DENOISE_REPEAT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("DENOISE_REPEAT: %q must be a positive integer", v)
		}
		cfg.Repeat = n
	}

	if v, ok := lookup("TELEGRAM_CHAT_ID"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %q is not an integer", v)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
