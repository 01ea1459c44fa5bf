package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette holds the 256-color code of every core color. ColorDefault has
// no entry and is written unstyled.
var palette = map[core.Color]string{
	core.ColorRed:     "9",
	core.ColorGreen:   "10",
	core.ColorYellow:  "11",
	core.ColorBlue:    "12",
	core.ColorMagenta: "13",
	core.ColorCyan:    "14",
	core.ColorWhite:   "15",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// span is a run of cells on one row sharing a color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-color spans.
func rowSpans(s *core.Screen, y int) []span {
	var (
		spans []span
		run   strings.Builder
		cur   core.Color
	)
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != cur {
			spans = append(spans, span{color: cur, text: run.String()})
			run.Reset()
		}
		cur = cell.Color
		run.WriteRune(cell.Rune)
	}
	if run.Len() > 0 {
		spans = append(spans, span{color: cur, text: run.String()})
	}
	return spans
}

// RenderScreen turns the screen buffer into terminal output, one escape
// sequence per color span. Unknown colors render unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			style, ok := cellStyles[sp.color]
			if !ok {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(style.Render(sp.text))
		}
	}
	return sb.String()
}
