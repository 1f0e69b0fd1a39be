package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"ash-cli/internal/app"
)

// ContentRenderer turns a model turn into terminal output. Markdown goes
// through glamour; structured video markup from the backend becomes a
// playable-link card instead of raw HTML.
type ContentRenderer struct {
	mu    sync.Mutex
	md    *glamour.TermRenderer
	width int
	theme Theme
}

func NewContentRenderer(theme Theme) *ContentRenderer {
	return &ContentRenderer{theme: theme}
}

// Render classifies text and renders it at the given wrap width.
// Rendering never fails: on any glamour error the raw text comes back
// so the conversation stays readable.
func (r *ContentRenderer) Render(text string, width int) string {
	rc := app.ClassifyContent(text)
	if rc.Kind == app.ContentVideo {
		return r.videoCard(rc.VideoSrc, width)
	}
	return r.markdown(rc.Text, width)
}

func (r *ContentRenderer) markdown(text string, width int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width < 20 {
		width = 20
	}
	if r.md == nil || r.width != width {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		r.md = md
		r.width = width
	}

	out, err := r.md.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (r *ContentRenderer) videoCard(src string, width int) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(min(width-2, lipgloss.Width(src)+10))
	body := fmt.Sprintf("▶ %s\n%s", r.theme.TopBarKey.Render("ویڈیو تیار ہے"), r.theme.Muted.Render(src))
	return card.Render(body)
}
