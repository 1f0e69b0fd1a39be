package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStaticTokenEmptyIsAuthError(t *testing.T) {
	_, err := StaticToken("").Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestCommandTokenCachesWithinTTL(t *testing.T) {
	// The counter file makes repeated executions observable.
	counter := filepath.Join(t.TempDir(), "count")
	src := NewCommandToken(fmt.Sprintf("echo run >> %s; echo tok-from-cmd", counter))
	src.TTL = time.Minute

	for i := 0; i < 3; i++ {
		token, err := src.Token(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if token != "tok-from-cmd" {
			t.Fatalf("unexpected token %q", token)
		}
	}

	data, err := os.ReadFile(counter)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "run\n" {
		t.Fatalf("expected one execution, got %q", data)
	}
}

func TestCommandTokenFailureIsAuthError(t *testing.T) {
	src := NewCommandToken("exit 3")
	_, err := src.Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
