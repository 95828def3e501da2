package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Addr     string `env:"SL_TEST_ADDR" envDefault:"127.0.0.1:8080"`
	Language string `env:"SL_TEST_LANGUAGE" envDefault:"en"`
	Port     int    `env:"SL_TEST_PORT" envDefault:"123"`
}

func bindTest(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "default language")
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 || cfg.Language != "en" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SL_TEST_PORT", "not-an-int")
	var cfg testConfig
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseConfigFromArgs(t *testing.T) {
	t.Setenv("SL_TEST_ADDR", "env:9000")
	t.Setenv("SL_TEST_LANGUAGE", "hi")

	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-addr", "flag:9001"}, bindTest); err != nil {
		t.Fatalf("ParseConfigFromArgs: %v", err)
	}
	if cfg.Addr != "flag:9001" {
		t.Fatalf("Addr = %q, want flag override", cfg.Addr)
	}
	if cfg.Language != "hi" {
		t.Fatalf("Language = %q, want env value", cfg.Language)
	}
}

func TestParseConfigFromArgs_Nil(t *testing.T) {
	if err := ParseConfigFromArgs[testConfig](nil, flag.NewFlagSet("t", flag.ContinueOnError), nil, nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	if err := os.WriteFile(file, []byte("SL_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SL_TEST_DOTENV", "")
	os.Unsetenv("SL_TEST_DOTENV")

	if err := LoadDotEnv(file, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SL_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("SL_TEST_DOTENV = %q", got)
	}
}
