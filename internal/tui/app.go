package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"ash-cli/internal/app"
)

type view int

const (
	viewPicker view = iota
	viewChat
)

type sessionOpenedMsg struct {
	session *app.ChatSession
	err     error
}

// Model is the root bubbletea model. It owns the shared type selection and
// switches between the dashboard and the open session.
type Model struct {
	app   *app.Application
	theme Theme
	keys  keyMap
	sel   *Selection

	view   view
	picker pickerModel
	chat   chatModel

	width  int
	height int
}

func NewModel(application *app.Application) Model {
	theme := NewTheme()
	sel := &Selection{Type: application.Config.DefaultType()}
	return Model{
		app:    application,
		theme:  theme,
		keys:   defaultKeyMap(),
		sel:    sel,
		view:   viewPicker,
		picker: newPickerModel(application, theme, sel),
	}
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) openSession(id string) tea.Cmd {
	application := m.app
	return func() tea.Msg {
		session, err := application.OpenSession(context.Background(), id)
		return sessionOpenedMsg{session: session, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
		if m.view == viewChat {
			m.chat, cmd = m.chat.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.view == viewChat {
				m.chat.session.Close()
			}
			return m, tea.Quit
		}

	case openChatMsg:
		return m, m.openSession(msg.id)

	case sessionOpenedMsg:
		if msg.err != nil {
			m.picker.errText = msg.err.Error()
			return m, nil
		}
		m.view = viewChat
		m.chat = newChatModel(m.app, msg.session, m.theme)
		if m.width > 0 {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			if cmd != nil {
				return m, cmd
			}
		}
		return m, m.chat.Init()

	case backToPickerMsg:
		m.view = viewPicker
		m.app.Cache.InvalidateList(m.sel.Type)
		m.picker.loading = true
		return m, m.picker.loadChats(m.sel.Type)
	}

	var cmd tea.Cmd
	switch m.view {
	case viewChat:
		m.chat, cmd = m.chat.Update(msg)
	default:
		m.picker, cmd = m.picker.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.view == viewChat {
		return m.chat.View()
	}
	return m.picker.View()
}

// Run starts the interactive UI and blocks until it exits.
func Run(application *app.Application) error {
	program := tea.NewProgram(NewModel(application), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "running ui")
	}
	return nil
}
