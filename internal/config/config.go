package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all tool configuration
type Config struct {
	Root     string
	PDFPath  string
	CSVPath  string
	DataPath string
	DBPath   string
	LogLevel string
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Root:     getEnv("VOCAB_ROOT", "."),
		PDFPath:  getEnv("VOCAB_PDF_PATH", "JN026wordlist.pdf"),
		CSVPath:  getEnv("VOCAB_CSV_PATH", "N3单词new.csv"),
		DataPath: getEnv("VOCAB_DATA_PATH", filepath.Join("data", "vocab.json")),
		DBPath:   getEnv("VOCAB_DB_PATH", filepath.Join("data", "vocab.db")),
		LogLevel: strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
	}

	if !validLogLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", cfg.LogLevel)
	}

	return cfg, nil
}

// Resolve returns p joined onto the project root unless p is already absolute
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
