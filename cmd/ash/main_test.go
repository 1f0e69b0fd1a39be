package main

import (
	"testing"

	"ash-cli/internal/app"
)

func TestResolveType_Aliases(t *testing.T) {
	cfg := app.DefaultConfig()
	cases := map[string]app.ChatType{
		"story":   app.TypeStory,
		"rag":     app.TypeRagStory,
		"static":  app.TypeVideoStatic,
		"fluid":   app.TypeVideoFluid,
		"history": app.TypeHistoryBot,
	}
	for alias, want := range cases {
		got, err := resolveType(alias, cfg)
		if err != nil {
			t.Fatalf("resolveType(%q) error: %v", alias, err)
		}
		if got != want {
			t.Fatalf("resolveType(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestResolveType_WireValue(t *testing.T) {
	cfg := app.DefaultConfig()
	got, err := resolveType("History ChatBot", cfg)
	if err != nil {
		t.Fatalf("resolveType error: %v", err)
	}
	if got != app.TypeHistoryBot {
		t.Fatalf("resolveType = %q, want %q", got, app.TypeHistoryBot)
	}
}

func TestResolveType_EmptyUsesConfigDefault(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.DefaultChatType = string(app.TypeVideoFluid)

	got, err := resolveType("", cfg)
	if err != nil {
		t.Fatalf("resolveType error: %v", err)
	}
	if got != app.TypeVideoFluid {
		t.Fatalf("resolveType = %q, want %q", got, app.TypeVideoFluid)
	}
}

func TestResolveType_Unknown(t *testing.T) {
	if _, err := resolveType("poetry", app.DefaultConfig()); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
