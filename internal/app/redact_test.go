package app

import "testing"

func TestRedactSecrets_ReplacesProvidedValues(t *testing.T) {
	got := RedactSecrets("Bearer sk-live-12345 rejected", "sk-live-12345")
	want := "Bearer [REDACTED] rejected"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRedactSecrets_UsesTokenEnv(t *testing.T) {
	t.Setenv("ASH_TOKEN", "env-token-xyz")

	got := RedactSecrets("token env-token-xyz expired")
	if got != "token [REDACTED] expired" {
		t.Fatalf("got %q", got)
	}
}

func TestRedactSecrets_NoSecretsLeavesInputAlone(t *testing.T) {
	t.Setenv("ASH_TOKEN", "")

	in := "plain error body"
	if got := RedactSecrets(in); got != in {
		t.Fatalf("got %q, want unchanged", got)
	}
}
