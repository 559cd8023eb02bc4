package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultMinWidth keeps the caret line from resizing the panel as text
// grows and shrinks.
const DefaultMinWidth = 36

// Hero is everything the hero panel needs to draw one frame.
type Hero struct {
	Headline string
	Text     string
	Theme    Theme
	MinWidth int
}

// RenderHero draws the headline, the displayed text and the caret. It has
// no side effects and depends only on h.
func RenderHero(h Hero) string {
	minWidth := h.MinWidth
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}

	line := textStyle(h.Theme).Render(h.Text) + caretStyle(h.Theme).Render(Caret)
	if pad := minWidth - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	var s strings.Builder
	if h.Headline != "" {
		s.WriteString(GradientText(h.Headline, h.Theme.Headline, h.Theme.HeadlineTo))
		s.WriteString("\n\n")
	}
	s.WriteString(line)

	return panelStyle(h.Theme).Render(s.String())
}
