package tui

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ash-cli/internal/app"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type answerDoneMsg struct{ err error }

type historyRefreshedMsg struct{ err error }

type exportDoneMsg struct {
	filename string
	err      error
}

type spinTickMsg struct{}

type backToPickerMsg struct{}

// chatModel is the open-session view: the conversation in a viewport, an
// input below it, and the session controller deciding what is allowed.
type chatModel struct {
	app      *app.Application
	session  *app.ChatSession
	theme    Theme
	keys     keyMap
	renderer *ContentRenderer

	vp    viewport.Model
	input textarea.Model

	sending   bool
	exporting bool
	spinFrame int
	notice    string
	status    string

	width  int
	height int
}

func newChatModel(application *app.Application, session *app.ChatSession, theme Theme) chatModel {
	input := textarea.New()
	input.Placeholder = app.Placeholder(session.Type())
	input.ShowLineNumbers = false
	input.SetHeight(2)
	input.CharLimit = 4000
	input.Focus()

	m := chatModel{
		app:      application,
		session:  session,
		theme:    theme,
		keys:     defaultKeyMap(),
		renderer: NewContentRenderer(theme),
		vp:       viewport.New(80, 20),
		input:    input,
	}
	m.syncViewport()
	return m
}

func (m chatModel) Init() tea.Cmd {
	return nil
}

// submit runs the blocking answer request off the UI loop.
func (m chatModel) submit(text string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return answerDoneMsg{err: session.Submit(context.Background(), text)}
	}
}

func (m chatModel) refresh() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return historyRefreshedMsg{err: session.Refresh(context.Background())}
	}
}

func (m chatModel) export() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		name, data, err := session.Export(context.Background())
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: name}
	}
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinTickMsg{}
	})
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = max(20, msg.Width-2)
		m.vp.Height = max(5, msg.Height-8)
		m.input.SetWidth(max(20, msg.Width-4))
		m.syncViewport()
		return m, nil

	case spinTickMsg:
		if !m.sending {
			return m, nil
		}
		m.spinFrame = (m.spinFrame + 1) % len(spinnerFrames)
		m.syncViewport()
		return m, spinTick()

	case answerDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.notice = noticeText(msg.err)
			m.syncViewport()
			return m, nil
		}
		m.syncViewport()
		// The answer is on screen from the overlay; refetch so the server
		// record becomes the sole truth again.
		return m, m.refresh()

	case historyRefreshedMsg:
		// A failed refetch keeps the overlay; nothing to tell the user.
		m.syncViewport()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.notice = noticeText(msg.err)
			return m, nil
		}
		m.status = "saved " + msg.filename
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			if m.notice != "" {
				m.notice = ""
				return m, nil
			}
			m.session.Close()
			return m, func() tea.Msg { return backToPickerMsg{} }

		case key.Matches(msg, m.keys.Download):
			if m.exporting {
				return m, nil
			}
			if !m.session.ExportAvailable() {
				m.notice = "اس چیٹ کی پی ڈی ایف دستیاب نہیں"
				return m, nil
			}
			m.exporting = true
			m.status = ""
			return m, m.export()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()

		case key.Matches(msg, m.keys.Send):
			return m.onEnter()

		case key.Matches(msg, m.keys.Up):
			if !m.input.Focused() {
				m.vp.ScrollUp(1)
				return m, nil
			}

		case key.Matches(msg, m.keys.Down):
			if !m.input.Focused() {
				m.vp.ScrollDown(1)
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.session.CanSubmit() && !m.sending {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// onEnter gates the submission: silent on empty input, no-op while a
// request is in flight or after a single-turn chat is answered.
func (m chatModel) onEnter() (chatModel, tea.Cmd) {
	if m.sending || !m.session.CanSubmit() {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.sending = true
	m.notice = ""
	m.status = ""
	m.input.Reset()
	m.syncViewport()
	return m, tea.Batch(m.submit(text), spinTick())
}

func (m *chatModel) syncViewport() {
	m.vp.SetContent(m.renderHistory())
	m.vp.GotoBottom()
}

func (m chatModel) renderHistory() string {
	var b strings.Builder
	width := max(20, m.vp.Width-2)

	for _, msg := range m.session.EffectiveHistory() {
		if msg.Role == app.RoleUser {
			b.WriteString(m.theme.UserLabel.Render("آپ") + "\n")
			// User text is untrusted input; never rendered as markup.
			b.WriteString(msg.Text() + "\n\n")
			continue
		}
		b.WriteString(m.theme.ModelLabel.Render("ASH") + "\n")
		b.WriteString(m.renderer.Render(msg.Text(), width) + "\n\n")
	}

	if m.sending {
		frame := spinnerFrames[m.spinFrame]
		b.WriteString(m.theme.Spinner.Render(frame) + " " + m.theme.Pending.Render("جواب تیار ہو رہا ہے..."))
	}
	return b.String()
}

func (m chatModel) View() string {
	var b strings.Builder

	title := truncateRunes(string(m.session.Type()), max(20, m.width-10))
	b.WriteString(m.theme.TopBar.Render("ASH AI · "+title) + "\n")
	b.WriteString(m.vp.View() + "\n")

	if m.notice != "" {
		b.WriteString(m.theme.Notice.Render(m.notice) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.Warning.Render(m.status) + "\n")
	}

	switch {
	case m.session.Terminal():
		line := "یہ کہانی مکمل ہو چکی ہے"
		if m.session.ExportAvailable() {
			line += " · ctrl+d پی ڈی ایف محفوظ کریں"
		}
		b.WriteString(m.theme.Warning.Render(line) + "\n")
	case m.sending:
		b.WriteString(m.theme.InputBlur.Width(max(24, m.width-4)).Render(m.theme.Muted.Render(m.input.Placeholder)) + "\n")
	default:
		b.WriteString(m.theme.InputFocus.Width(max(24, m.width-4)).Render(m.input.View()) + "\n")
	}

	b.WriteString(m.theme.Footer.Render(renderShortHelp(m.keys)))
	return b.String()
}

// noticeText maps an error to the dismissible notice shown in-session.
func noticeText(err error) string {
	var apiErr *app.APIError
	switch {
	case errors.Is(err, app.ErrSessionComplete):
		return "یہ کہانی مکمل ہو چکی ہے"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	default:
		return err.Error()
	}
}
