package config

import (
	"os"
	"testing"
)

var allKeys = []string{
	"RECONV_DICTIONARY", "RECONV_ID_LABEL", "RECONV_CATEGORY_LABEL",
	"RECONV_SUBCATEGORY_LABEL", "RECONV_OUTPUT", "RECONV_FORMAT",
	"RECONV_OVERWRITE", "RECONV_LOG_LEVEL", "RECONV_VALIDATE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Store.OutputDir != "v2" {
		t.Fatalf("expected default output dir 'v2', got %q", cfg.Store.OutputDir)
	}
	if cfg.Store.Format != "yaml" {
		t.Fatalf("expected default format 'yaml', got %q", cfg.Store.Format)
	}
	if cfg.Store.Overwrite {
		t.Fatal("expected default Overwrite=false")
	}
	if cfg.Transform.DictionaryPath != "" {
		t.Fatalf("expected empty dictionary path, got %q", cfg.Transform.DictionaryPath)
	}
	if cfg.Transform.IDLabel != "id" || cfg.Transform.CategoryLabel != "area" || cfg.Transform.SubcategoryLabel != "subarea" {
		t.Fatalf("unexpected default label names: %+v", cfg.Transform)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
	if cfg.Validate {
		t.Fatal("expected default Validate=false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECONV_OUTPUT", "out/v2")
	t.Setenv("RECONV_FORMAT", "json")
	t.Setenv("RECONV_OVERWRITE", "true")
	t.Setenv("RECONV_CATEGORY_LABEL", "pillar")
	t.Setenv("RECONV_VALIDATE", "1")

	cfg := Load()

	if cfg.Store.OutputDir != "out/v2" {
		t.Fatalf("expected output dir 'out/v2', got %q", cfg.Store.OutputDir)
	}
	if cfg.Store.Format != "json" {
		t.Fatalf("expected format 'json', got %q", cfg.Store.Format)
	}
	if !cfg.Store.Overwrite {
		t.Fatal("expected Overwrite=true")
	}
	if cfg.Transform.CategoryLabel != "pillar" {
		t.Fatalf("expected category label 'pillar', got %q", cfg.Transform.CategoryLabel)
	}
	if !cfg.Validate {
		t.Fatal("expected Validate=true")
	}
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECONV_OVERWRITE", "yes please")

	cfg := Load()
	if cfg.Store.Overwrite {
		t.Fatal("unparseable bool should fall back to default false")
	}
}
