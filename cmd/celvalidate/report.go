package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/starbound-io/celvalidate"
)

// Level tag colors, picked for dark terminal backgrounds.
const (
	colorError = lipgloss.Color("#EF4444")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorInfo  = lipgloss.Color("#6B7280")
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	infoStyle  = lipgloss.NewStyle().Foreground(colorInfo)
)

// applyColorMode overrides lipgloss's terminal detection when color output
// is forced on or off.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func levelTag(level celvalidate.Level) string {
	switch level {
	case celvalidate.Error:
		return errorStyle.Render(level.String())
	case celvalidate.Warn:
		return warnStyle.Render(level.String())
	default:
		return infoStyle.Render(level.String())
	}
}

// reporter prints per-file diagnostics. Informational messages are only
// shown in verbose mode.
type reporter struct {
	out     io.Writer
	verbose bool
}

// report prints the diagnostics for one file and reports whether any of
// them were warnings or errors.
func (r *reporter) report(name string, msgs []celvalidate.Message) bool {
	problems := false
	for _, msg := range msgs {
		if msg.Level > celvalidate.Info {
			problems = true
		} else if !r.verbose {
			continue
		}
		fmt.Fprintf(r.out, "%s:%s (%d:%d) %s\n", name, levelTag(msg.Level), msg.Line, msg.Pos, msg.Text)
	}
	return problems
}
