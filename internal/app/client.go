package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client talks to the ASH backend over the /api contract. Every request
// carries a bearer token from the configured TokenSource; non-2xx responses
// surface their plain-text body as an *APIError.
type Client struct {
	BaseURL string
	Tokens  TokenSource
	HTTP    *http.Client

	logger zerolog.Logger
}

func NewClient(baseURL string, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Tokens:  tokens,
		HTTP:    &http.Client{Timeout: 120 * time.Second},
		logger:  logger.With().Str("component", "client").Logger(),
	}
}

type createChatRequest struct {
	Text string   `json:"text"`
	Type ChatType `json:"type"`
}

type askRequest struct {
	Question string `json:"question,omitempty"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// ListChats fetches the user's chats of one type, as shown in the sidebar.
func (c *Client) ListChats(ctx context.Context, chatType ChatType) ([]ChatSummary, error) {
	endpoint := c.BaseURL + "/api/userchats?type=" + url.QueryEscape(string(chatType))
	var chats []ChatSummary
	if err := c.getJSON(ctx, endpoint, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// GetChat fetches a chat's authoritative record, history included.
func (c *Client) GetChat(ctx context.Context, chatID string) (*Chat, error) {
	var chat Chat
	if err := c.getJSON(ctx, c.BaseURL+"/api/chats/"+url.PathEscape(chatID), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// CreateChat opens a new chat of the given type seeded with the first text.
// The backend generates the opening answer as part of creation and returns
// the new chat id.
func (c *Client) CreateChat(ctx context.Context, text string, chatType ChatType) (string, error) {
	body, err := json.Marshal(createChatRequest{Text: text, Type: chatType})
	if err != nil {
		return "", errors.Wrap(err, "marshal create request")
	}
	resp, err := c.do(ctx, http.MethodPost, c.BaseURL+"/api/chats", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read create response")
	}
	// The backend returns the id as a bare JSON string.
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		id = strings.TrimSpace(string(raw))
	}
	if id == "" {
		return "", errors.New("backend returned no chat id")
	}
	c.logger.Info().Str("chat_id", id).Str("type", string(chatType)).Msg("chat created")
	return id, nil
}

// AskQuestion submits a question to a chat and returns the generated answer.
// The backend appends both entries to the chat's history itself.
func (c *Client) AskQuestion(ctx context.Context, chatID, question string) (string, error) {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", errors.Wrap(err, "marshal question")
	}
	endpoint := c.BaseURL + "/api/chats/" + url.PathEscape(chatID) + "/message"
	resp, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed askResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decode answer")
	}
	return parsed.Answer, nil
}

// ExportPDF streams the finished story of a chat as PDF bytes.
func (c *Client) ExportPDF(ctx context.Context, chatID string) ([]byte, error) {
	endpoint := c.BaseURL + "/api/chats/" + url.PathEscape(chatID) + "/pdf"
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read pdf stream")
	}
	c.logger.Info().Str("chat_id", chatID).Int("bytes", len(data)).Msg("pdf exported")
	return data, nil
}

// ExportFilename names the artifact deterministically from the chat id.
func ExportFilename(chatID string) string {
	return fmt.Sprintf("story_%s.pdf", chatID)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// do issues one authenticated request and normalizes failures: token
// problems become *AuthError, non-2xx statuses become *APIError with the
// plain-text body attached.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		// Error bodies go to logs and the screen; the token must not.
		body := RedactSecrets(strings.TrimSpace(string(raw)), token)
		apiErr := &APIError{Status: resp.StatusCode, Body: body}
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("backend error")
		return nil, apiErr
	}
	return resp, nil
}
