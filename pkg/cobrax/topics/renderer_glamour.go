package topics

import (
	"strings"

	"github.com/arthur-debert/buildplan/pkg/ui/render"
)

// MarkdownRenderer renders .md topics with glamour. Other formats, and
// every topic when Styled is false, are returned unchanged.
type MarkdownRenderer struct {
	Styled bool
	Width  int // 0 keeps glamour's default wrapping
}

// NewMarkdownRenderer creates a markdown renderer
func NewMarkdownRenderer(styled bool) *MarkdownRenderer {
	return &MarkdownRenderer{Styled: styled}
}

// Render converts markdown to terminal output
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" || !r.Styled {
		return content
	}

	var b strings.Builder
	if err := render.Markdown(&b, content, true, r.Width); err != nil {
		return content
	}
	return b.String()
}
