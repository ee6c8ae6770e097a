package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NoColor returns true if colored output should be disabled.
// Respects the NO_COLOR environment variable (https://no-color.org/).
func NoColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

var (
	ColorMuted  = lipgloss.Color("#95A5A6") // gray
	ColorAccent = lipgloss.Color("#9B59B6") // purple

	// StyleTitle is for section headers.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// StyleMuted is for secondary text such as file lists.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
)

// plainStyles keeps the level labels of the default styles but drops
// every color.
func plainStyles() *log.Styles {
	styles := log.DefaultStyles()
	for lvl, st := range styles.Levels {
		styles.Levels[lvl] = lipgloss.NewStyle().SetString(st.Value()).MaxWidth(4)
	}
	styles.Key = lipgloss.NewStyle()
	styles.Value = lipgloss.NewStyle()
	return styles
}

// Section renders a titled, indented list of lines for command summaries.
func Section(title string, lines []string) string {
	var b strings.Builder
	if NoColor() {
		b.WriteString(title)
	} else {
		b.WriteString(StyleTitle.Render(title))
	}
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString("  ")
		if NoColor() {
			b.WriteString(l)
		} else {
			b.WriteString(StyleMuted.Render(l))
		}
		b.WriteString("\n")
	}
	return b.String()
}
