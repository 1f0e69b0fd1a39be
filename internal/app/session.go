package app

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestPhase tracks the answer request lifecycle. Transitions happen only
// inside Submit and Refresh; the UI observes, it never sets phases.
type RequestPhase int

const (
	PhaseIdle RequestPhase = iota
	PhaseSending
	PhaseSucceeded
	PhaseFailed
)

func (p RequestPhase) String() string {
	switch p {
	case PhaseSending:
		return "sending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// SessionBackend is the slice of Client a session needs. Narrowed for tests.
type SessionBackend interface {
	GetChat(ctx context.Context, chatID string) (*Chat, error)
	AskQuestion(ctx context.Context, chatID, question string) (string, error)
	ExportPDF(ctx context.Context, chatID string) ([]byte, error)
}

// ChatSession is the per-chat controller. It owns the transient overlay
// (pending question/answer) on top of the server-authoritative history,
// enforces at most one in-flight answer request, and decides when the
// server copy must be refetched.
//
// A session lives as long as its view is open. Close cancels whatever is
// still in flight; late results for a closed session are discarded.
type ChatSession struct {
	backend SessionBackend
	logger  zerolog.Logger
	cache   *ChatCache

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	chat            *Chat
	phase           RequestPhase
	lastOutcome     RequestPhase
	lastErr         error
	pendingQuestion string
	pendingAnswer   string
	stale           bool
}

func NewChatSession(backend SessionBackend, cache *ChatCache, chat *Chat, logger zerolog.Logger) *ChatSession {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChatSession{
		backend: backend,
		cache:   cache,
		chat:    chat,
		logger: logger.With().
			Str("component", "session").
			Str("session_id", uuid.NewString()).
			Str("chat_id", chat.ID).
			Logger(),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *ChatSession) ChatID() string { return s.chat.ID }

func (s *ChatSession) Type() ChatType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat.Type
}

func (s *ChatSession) Phase() RequestPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Terminal reports whether the session accepts no further submissions:
// single-turn types become terminal once the backend has recorded an answer.
// History ChatBot never terminates.
func (s *ChatSession) Terminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminalLocked()
}

func (s *ChatSession) terminalLocked() bool {
	return IsSingleTurn(s.chat.Type) && s.chat.Answered()
}

// CanSubmit is the input-form gate: false while sending or terminal.
func (s *ChatSession) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase != PhaseSending && !s.terminalLocked()
}

// EffectiveHistory merges server truth with the optimistic overlay: the
// pending question and answer are appended as synthetic messages until the
// next authoritative refetch replaces them.
func (s *ChatSession) EffectiveHistory() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]Message, len(s.chat.History), len(s.chat.History)+2)
	copy(history, s.chat.History)
	if s.pendingQuestion != "" {
		history = append(history, NewMessage(RoleUser, s.pendingQuestion))
	}
	if s.pendingAnswer != "" {
		history = append(history, NewMessage(RoleModel, s.pendingAnswer))
	}
	return history
}

// Submit runs one answer request to completion. Empty input is rejected
// before any network work; a submission while another is sending is a no-op
// error; failure discards the pending question and leaves the session ready
// for resubmission. No retry happens here or anywhere.
func (s *ChatSession) Submit(ctx context.Context, text string) error {
	question := strings.TrimSpace(text)
	if question == "" {
		return ErrEmptyQuestion
	}

	s.mu.Lock()
	if s.phase == PhaseSending {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if s.terminalLocked() {
		s.mu.Unlock()
		return ErrSessionComplete
	}
	s.phase = PhaseSending
	s.pendingQuestion = question
	s.pendingAnswer = ""
	s.mu.Unlock()

	// Tie the request to the session so Close cancels it.
	reqCtx, cancel := mergeContexts(ctx, s.ctx)
	defer cancel()

	answer, err := s.backend.AskQuestion(reqCtx, s.chat.ID, question)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Sending → Failed → Idle: the attempt is over, the question is
		// discarded, and the caller gets the recoverable error.
		s.phase = PhaseIdle
		s.lastOutcome = PhaseFailed
		s.lastErr = err
		s.pendingQuestion = ""
		s.logger.Warn().Err(err).Msg("answer request failed")
		return err
	}
	// Sending → Succeeded → Idle, with the overlay retained until the next
	// authoritative refetch.
	s.phase = PhaseIdle
	s.lastOutcome = PhaseSucceeded
	s.lastErr = nil
	s.pendingAnswer = answer
	s.stale = true
	if s.cache != nil {
		s.cache.InvalidateChat(s.chat.ID)
	}
	s.logger.Info().Int("answer_len", len(answer)).Msg("answer received")
	return nil
}

// LastOutcome reports how the most recent answer request ended, for status
// display. PhaseIdle means no request has completed yet.
func (s *ChatSession) LastOutcome() (RequestPhase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome, s.lastErr
}

// Refresh refetches the server history when the session is stale (after a
// successful answer) and clears the overlay, making the server record the
// sole truth again. When not stale it is a no-op.
func (s *ChatSession) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.stale {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	reqCtx, cancel := mergeContexts(ctx, s.ctx)
	defer cancel()

	chat, err := s.backend.GetChat(reqCtx, s.chat.ID)
	if err != nil {
		// Keep the overlay; the user still sees the exchange and the
		// next Refresh tries again.
		s.logger.Warn().Err(err).Msg("history refetch failed")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = chat
	s.pendingQuestion = ""
	s.pendingAnswer = ""
	s.stale = false
	s.phase = PhaseIdle
	if s.cache != nil {
		s.cache.SetChat(chat)
	}
	return nil
}

// ExportAvailable is true only for answered story-type sessions.
func (s *ChatSession) ExportAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	answered := s.chat.Answered() || s.pendingAnswer != ""
	return IsExportableType(s.chat.Type) && answered
}

// Export fetches the PDF artifact and returns its deterministic filename
// alongside the bytes. Failures are recoverable; the caller may try again.
func (s *ChatSession) Export(ctx context.Context) (string, []byte, error) {
	reqCtx, cancel := mergeContexts(ctx, s.ctx)
	defer cancel()

	data, err := s.backend.ExportPDF(reqCtx, s.chat.ID)
	if err != nil {
		return "", nil, err
	}
	return ExportFilename(s.chat.ID), data, nil
}

// Close cancels any in-flight request. The session is not usable afterwards.
func (s *ChatSession) Close() {
	s.cancel()
}

// mergeContexts derives a context cancelled when either parent is.
func mergeContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(a)
	stop := context.AfterFunc(b, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
