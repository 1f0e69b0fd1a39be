package tui

import (
	"testing"

	"ash-cli/internal/app"
)

func TestNextChatTypeCyclesAllTypes(t *testing.T) {
	seen := map[app.ChatType]bool{}
	cur := app.AllChatTypes[0]
	for range app.AllChatTypes {
		seen[cur] = true
		cur = nextChatType(cur)
	}
	if cur != app.AllChatTypes[0] {
		t.Fatalf("cycle did not wrap, ended on %q", cur)
	}
	for _, want := range app.AllChatTypes {
		if !seen[want] {
			t.Fatalf("cycle skipped %q", want)
		}
	}
}

func TestNextChatTypeUnknownFallsBack(t *testing.T) {
	if got := nextChatType(app.ChatType("bogus")); got != app.AllChatTypes[0] {
		t.Fatalf("unknown type cycled to %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer title than fits", 10, "a longer …"},
		{"کہانی کا عنوان", 6, "کہانی…"},
	}
	for _, c := range cases {
		if got := truncateRunes(c.in, c.n); got != c.want {
			t.Fatalf("truncateRunes(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
