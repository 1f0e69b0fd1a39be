package app

import (
	"context"

	"github.com/rs/zerolog"
)

// Application wires the controller pieces together for the TUI and the
// non-interactive subcommands.
type Application struct {
	Config Config
	Logger zerolog.Logger
	Client *Client
	Cache  *ChatCache
}

func NewApplication(cfg Config) (*Application, error) {
	logger, err := NewLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	var tokens TokenSource
	if cfg.TokenCommand != "" {
		tokens = NewCommandToken(cfg.TokenCommand)
	} else {
		tokens = StaticToken(cfg.Token)
	}

	client := NewClient(cfg.BaseURL, tokens, logger)
	client.HTTP.Timeout = cfg.RequestTimeout()

	return &Application{
		Config: cfg,
		Logger: logger,
		Client: client,
		Cache:  NewChatCache(cfg.Freshness()),
	}, nil
}

// ListChats serves the sidebar list through the freshness window.
func (a *Application) ListChats(ctx context.Context, t ChatType) ([]ChatSummary, error) {
	if chats, ok := a.Cache.GetList(t); ok {
		return chats, nil
	}
	chats, err := a.Client.ListChats(ctx, t)
	if err != nil {
		return nil, err
	}
	a.Cache.SetList(t, chats)
	return chats, nil
}

// OpenSession fetches a chat (through the cache) and builds its session
// controller. The caller owns the session and must Close it.
func (a *Application) OpenSession(ctx context.Context, chatID string) (*ChatSession, error) {
	chat, ok := a.Cache.GetChat(chatID)
	if !ok {
		fetched, err := a.Client.GetChat(ctx, chatID)
		if err != nil {
			return nil, err
		}
		a.Cache.SetChat(fetched)
		chat = fetched
	}
	return NewChatSession(a.Client, a.Cache, chat, a.Logger), nil
}

// CreateChat creates a chat and invalidates the type's list so the sidebar
// picks it up on the next read.
func (a *Application) CreateChat(ctx context.Context, text string, t ChatType) (string, error) {
	id, err := a.Client.CreateChat(ctx, text, t)
	if err != nil {
		return "", err
	}
	a.Cache.InvalidateList(t)
	return id, nil
}
