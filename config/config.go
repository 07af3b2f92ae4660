package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SearchURL    string
	OutCSV       string
	CSVDelimiter rune

	PageSize      int
	RenderTimeout time.Duration
	SettleTimeout time.Duration
	PollInterval  time.Duration
	Headless      bool

	DatabaseURL string
	DBBatchSize int
}

func Load() (*Config, error) {
	cfg := &Config{
		SearchURL:     os.Getenv("SEARCH_URL"),
		OutCSV:        getEnv("OUT_CSV", "properties.csv"),
		CSVDelimiter:  getEnvRune("CSV_DELIMITER", ';'),
		PageSize:      getEnvInt("PAGE_SIZE", 25),
		RenderTimeout: time.Duration(getEnvInt("RENDER_TIMEOUT_SECONDS", 20)) * time.Second,
		SettleTimeout: time.Duration(getEnvInt("SETTLE_TIMEOUT_SECONDS", 10)) * time.Second,
		PollInterval:  time.Duration(getEnvInt("POLL_INTERVAL_MS", 250)) * time.Millisecond,
		Headless:      getEnvBool("HEADLESS", true),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBBatchSize:   getEnvInt("DB_BATCH_SIZE", 100),
	}

	if cfg.SearchURL == "" {
		return nil, fmt.Errorf("SEARCH_URL is required")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvRune(key string, def rune) rune {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return []rune(v)[0]
}
