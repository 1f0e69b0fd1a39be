package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ash-cli/internal/app"
)

// Selection is the chat-type choice shared across views. The root model
// owns the single instance and hands it to whichever view needs it, so the
// picker never reaches into ambient state to find out what is selected.
type Selection struct {
	Type app.ChatType
}

type chatsLoadedMsg struct {
	chatType app.ChatType
	chats    []app.ChatSummary
	err      error
}

type chatCreatedMsg struct {
	id  string
	err error
}

type openChatMsg struct {
	id string
}

const (
	focusPrompt = iota
	focusList
)

// pickerModel is the dashboard: a type selector, a prompt that starts a new
// chat, and the recent chats of the selected type.
type pickerModel struct {
	app   *app.Application
	theme Theme
	keys  keyMap
	sel   *Selection

	prompt   textinput.Model
	chats    []app.ChatSummary
	cursor   int
	focus    int
	loading  bool
	creating bool
	errText  string

	width  int
	height int
}

func newPickerModel(application *app.Application, theme Theme, sel *Selection) pickerModel {
	prompt := textinput.New()
	prompt.Placeholder = app.Placeholder(sel.Type)
	prompt.CharLimit = 2000
	prompt.Focus()

	return pickerModel{
		app:     application,
		theme:   theme,
		keys:    defaultKeyMap(),
		sel:     sel,
		prompt:  prompt,
		loading: true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return m.loadChats(m.sel.Type)
}

func (m pickerModel) loadChats(t app.ChatType) tea.Cmd {
	application := m.app
	return func() tea.Msg {
		chats, err := application.ListChats(context.Background(), t)
		return chatsLoadedMsg{chatType: t, chats: chats, err: err}
	}
}

func (m pickerModel) createChat(text string, t app.ChatType) tea.Cmd {
	application := m.app
	return func() tea.Msg {
		id, err := application.CreateChat(context.Background(), text, t)
		return chatCreatedMsg{id: id, err: err}
	}
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(20, msg.Width-8)
		return m, nil

	case chatsLoadedMsg:
		if msg.chatType != m.sel.Type {
			// Stale load for a type the user has already moved past.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.chats = msg.chats
		if m.cursor >= len(m.chats) {
			m.cursor = max(0, len(m.chats)-1)
		}
		return m, nil

	case chatCreatedMsg:
		m.creating = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.prompt.Reset()
		return m, func() tea.Msg {
			return openChatMsg{id: msg.id}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextType):
			m.sel.Type = nextChatType(m.sel.Type)
			m.prompt.Placeholder = app.Placeholder(m.sel.Type)
			m.chats = nil
			m.cursor = 0
			m.loading = true
			return m, m.loadChats(m.sel.Type)

		case key.Matches(msg, m.keys.Focus):
			if m.focus == focusPrompt {
				m.focus = focusList
				m.prompt.Blur()
			} else {
				m.focus = focusPrompt
				m.prompt.Focus()
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.app.Cache.InvalidateList(m.sel.Type)
			m.loading = true
			return m, m.loadChats(m.sel.Type)

		case key.Matches(msg, m.keys.Send):
			if m.focus == focusList {
				if m.cursor < len(m.chats) {
					id := m.chats[m.cursor].ID
					return m, func() tea.Msg { return openChatMsg{id: id} }
				}
				return m, nil
			}
			text := strings.TrimSpace(m.prompt.Value())
			if text == "" || m.creating {
				return m, nil
			}
			m.creating = true
			return m, m.createChat(text, m.sel.Type)

		case key.Matches(msg, m.keys.Up):
			if m.focus == focusList {
				if m.cursor > 0 {
					m.cursor--
				}
				return m, nil
			}

		case key.Matches(msg, m.keys.Down):
			if m.focus == focusList {
				if m.cursor < len(m.chats)-1 {
					m.cursor++
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == focusPrompt {
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.TopBar.Render("ASH AI") + "\n\n")
	b.WriteString(m.typeRow() + "\n\n")

	promptPane := m.theme.InputBlur
	if m.focus == focusPrompt {
		promptPane = m.theme.InputFocus
	}
	b.WriteString(promptPane.Width(max(24, m.width-4)).Render(m.prompt.View()) + "\n\n")

	if m.errText != "" {
		b.WriteString(m.theme.Notice.Render(m.errText) + "\n\n")
	}

	b.WriteString(m.chatList() + "\n")
	b.WriteString(m.theme.Footer.Render(renderShortHelp(m.keys)))
	return b.String()
}

func (m pickerModel) typeRow() string {
	parts := make([]string, 0, len(app.AllChatTypes))
	for _, t := range app.AllChatTypes {
		if t == m.sel.Type {
			parts = append(parts, m.theme.TypeBadge.Render(string(t)))
		} else {
			parts = append(parts, m.theme.Muted.Render(string(t)))
		}
	}
	return strings.Join(parts, "  ")
}

func (m pickerModel) chatList() string {
	if m.loading {
		return m.theme.Muted.Render("loading chats...")
	}
	if len(m.chats) == 0 {
		return m.theme.Muted.Render("no chats yet")
	}

	var b strings.Builder
	for i, c := range m.chats {
		title := c.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled Chat"
		}
		line := fmt.Sprintf("  %s", truncateRunes(title, max(20, m.width-6)))
		if m.focus == focusList && i == m.cursor {
			line = m.theme.ListSelected.Render("▸ " + truncateRunes(title, max(20, m.width-8)))
		} else {
			line = m.theme.ListItem.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func nextChatType(t app.ChatType) app.ChatType {
	for i, candidate := range app.AllChatTypes {
		if candidate == t {
			return app.AllChatTypes[(i+1)%len(app.AllChatTypes)]
		}
	}
	return app.AllChatTypes[0]
}

func renderShortHelp(k keyMap) string {
	parts := make([]string, 0, 5)
	for _, b := range k.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " · ")
}

// truncateRunes cuts s to at most n runes, appending an ellipsis when
// anything was dropped.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
