package app

import (
	"regexp"
	"strings"
)

// ContentKind decides how a message body is presented.
type ContentKind int

const (
	// ContentMarkdown is untrusted formatted text. It goes through the
	// markdown renderer and is never interpreted as raw markup.
	ContentMarkdown ContentKind = iota
	// ContentVideo is the backend's own templated video embed, the one
	// shape of raw markup the client trusts.
	ContentVideo
)

// videoSourceRe matches the media URL in the backend's video template,
// either on the <video> tag itself or on its nested <source> element.
var videoSourceRe = regexp.MustCompile(`<(?:video|source)\b[^>]*?\bsrc=['"]?([^'">\s]+)`)

// RenderedContent is the classification result handed to the presentation
// layer.
type RenderedContent struct {
	Kind ContentKind
	// Text is the message body for the markdown path.
	Text string
	// VideoSrc is the extracted media URL for the video path.
	VideoSrc string
}

// ClassifyContent applies the trust boundary. Only content that IS the
// backend's templated embed counts as video: the markup must open with a tag
// and carry a <video> element with a parseable source. A message that merely
// mentions "<video" mid-text stays on the untrusted markdown path, so
// user-echoed markup can never become an injection vector.
func ClassifyContent(text string) RenderedContent {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, "<video") {
		if m := videoSourceRe.FindStringSubmatch(trimmed); m != nil {
			return RenderedContent{Kind: ContentVideo, Text: text, VideoSrc: m[1]}
		}
	}
	return RenderedContent{Kind: ContentMarkdown, Text: text}
}
