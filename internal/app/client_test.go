package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, StaticToken("tok-123"), zerolog.New(io.Discard)), srv
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]ChatSummary{})
	}))

	if _, err := client.ListChats(context.Background(), TypeStory); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientMissingTokenIsAuthError(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	client.Tokens = StaticToken("")

	_, err := client.GetChat(context.Background(), "c1")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if called {
		t.Fatal("request must not reach the backend without credentials")
	}
}

func TestClientSurfacesPlainTextErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Chat not found"))
	}))

	_, err := client.GetChat(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Body != "Chat not found" {
		t.Fatalf("unexpected error detail: %+v", apiErr)
	}
}

func TestClientAskQuestion(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chats/c7/message" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body askRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Error(err)
		}
		if body.Question != "who was Babur?" {
			t.Errorf("unexpected question %q", body.Question)
		}
		_ = json.NewEncoder(w).Encode(askResponse{Answer: "a Mughal emperor"})
	}))

	answer, err := client.AskQuestion(context.Background(), "c7", "who was Babur?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "a Mughal emperor" {
		t.Fatalf("unexpected answer %q", answer)
	}
}

func TestClientCreateChatParsesBareStringID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body createChatRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Type != TypeRagStory {
			t.Errorf("unexpected type %q", body.Type)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`"66aa00bb11"`))
	}))

	id, err := client.CreateChat(context.Background(), "ek kahani", TypeRagStory)
	if err != nil {
		t.Fatal(err)
	}
	if id != "66aa00bb11" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestClientExportPDFStreamsBytes(t *testing.T) {
	pdf := []byte("%PDF-1.7 urdu story")
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chats/abc123/pdf" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))

	data, err := client.ExportPDF(context.Background(), "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(pdf) {
		t.Fatal("pdf bytes mangled in transit")
	}
	if ExportFilename("abc123") != "story_abc123.pdf" {
		t.Fatalf("unexpected filename %q", ExportFilename("abc123"))
	}
}
