package tui

import (
	"strings"
	"testing"
)

func TestRenderVideoCardShowsSource(t *testing.T) {
	r := NewContentRenderer(noColorTheme())

	markup := `<div class='flex flex-col items-center'><video controls src='http://localhost:3000/static/videos/abc.mp4'></video></div>`
	out := r.Render(markup, 60)

	if strings.Contains(out, "<video") {
		t.Fatalf("raw markup leaked into output: %q", out)
	}
	if !strings.Contains(out, "http://localhost:3000/static/videos/abc.mp4") {
		t.Fatalf("video source missing from card: %q", out)
	}
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	r := NewContentRenderer(noColorTheme())

	out := r.Render("ایک دفعہ کا ذکر ہے", 60)
	if !strings.Contains(out, "ایک دفعہ کا ذکر ہے") {
		t.Fatalf("markdown output lost the text: %q", out)
	}
}

func TestRenderReusesRendererPerWidth(t *testing.T) {
	r := NewContentRenderer(noColorTheme())

	r.Render("one", 60)
	first := r.md
	r.Render("two", 60)
	if r.md != first {
		t.Fatal("renderer rebuilt without a width change")
	}
	r.Render("three", 40)
	if r.md == first {
		t.Fatal("renderer not rebuilt after width change")
	}
}
