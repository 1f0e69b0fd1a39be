package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Freshness() != 10*time.Second {
		t.Fatalf("unexpected freshness %v", cfg.Freshness())
	}
	if cfg.DefaultChatType != string(TypeStory) {
		t.Fatalf("unexpected default type %q", cfg.DefaultChatType)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "base_url: https://ash.example.com\ntoken: abc\nfreshness_seconds: 30\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://ash.example.com" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Token != "abc" {
		t.Fatalf("unexpected token %q", cfg.Token)
	}
	if cfg.Freshness() != 30*time.Second {
		t.Fatalf("unexpected freshness %v", cfg.Freshness())
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ASH_API_URL", "http://env.example.com")
	t.Setenv("ASH_TOKEN", "env-token")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://env.example.com" {
		t.Fatalf("env override lost: %q", cfg.BaseURL)
	}
	if cfg.Token != "env-token" {
		t.Fatalf("env override lost: %q", cfg.Token)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	in := DefaultConfig()
	in.Token = "xyz"
	if err := SaveConfig(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Token != "xyz" {
		t.Fatalf("round trip lost token: %q", out.Token)
	}
}
