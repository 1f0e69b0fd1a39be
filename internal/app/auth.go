package app

import (
	"context"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// TokenSource supplies the bearer token attached to every backend request.
// Token issuance itself belongs to the identity provider; the client only
// fetches and attaches.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken returns the same token forever.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", &AuthError{Err: errors.New("no token configured")}
	}
	return string(s), nil
}

// CommandToken mints tokens by running an external command (e.g. a helper
// that talks to the identity provider) and reading its stdout. Tokens are
// cached for a short window so the TUI does not shell out on every request.
type CommandToken struct {
	Command string
	TTL     time.Duration

	mu      sync.Mutex
	cached  string
	fetched time.Time
}

func NewCommandToken(command string) *CommandToken {
	return &CommandToken{Command: command, TTL: 30 * time.Second}
}

func (c *CommandToken) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != "" && time.Since(c.fetched) < c.TTL {
		return c.cached, nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", c.Command)
	out, err := cmd.Output()
	if err != nil {
		return "", &AuthError{Err: errors.Wrap(err, "token command failed")}
	}
	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", &AuthError{Err: errors.New("token command produced no output")}
	}
	c.cached = token
	c.fetched = time.Now()
	return token, nil
}
