package config

import (
	"os"
	"strconv"
)

// Config holds all reconv configuration. Values come from RECONV_* env
// vars with defaults; command-line flags override them.
type Config struct {
	Transform TransformConfig
	Store     StoreConfig
	LogLevel  string
	Validate  bool
}

// TransformConfig holds converter settings.
type TransformConfig struct {
	DictionaryPath   string
	IDLabel          string
	CategoryLabel    string
	SubcategoryLabel string
}

// StoreConfig holds output destination settings.
type StoreConfig struct {
	OutputDir string
	Format    string // "yaml", "yml" or "json"
	Overwrite bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Transform: TransformConfig{
			DictionaryPath:   os.Getenv("RECONV_DICTIONARY"),
			IDLabel:          getenv("RECONV_ID_LABEL", "id"),
			CategoryLabel:    getenv("RECONV_CATEGORY_LABEL", "area"),
			SubcategoryLabel: getenv("RECONV_SUBCATEGORY_LABEL", "subarea"),
		},
		Store: StoreConfig{
			OutputDir: getenv("RECONV_OUTPUT", "v2"),
			Format:    getenv("RECONV_FORMAT", "yaml"),
			Overwrite: getenvBool("RECONV_OVERWRITE", false),
		},
		LogLevel: getenv("RECONV_LOG_LEVEL", "info"),
		Validate: getenvBool("RECONV_VALIDATE", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
