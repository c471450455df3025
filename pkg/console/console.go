// Package console formats user-facing messages. Output is styled with
// lipgloss when stdout is a terminal and degrades to plain text with the
// same markers when piped, so CI logs stay readable.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lockcheck/lockcheck/pkg/tty"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	verboseStyle = lipgloss.NewStyle().Faint(true)

	// Styling is decided once; tests and CI pipes see plain output.
	styled = tty.IsStdoutTerminal()
)

func render(style lipgloss.Style, message string) string {
	if !styled {
		return message
	}
	return style.Render(message)
}

// FormatErrorMessage formats a fatal or failing condition.
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗ "+message)
}

// FormatWarningMessage formats a non-fatal problem.
func FormatWarningMessage(message string) string {
	return render(warningStyle, "⚠ "+message)
}

// FormatInfoMessage formats a neutral informational line.
func FormatInfoMessage(message string) string {
	return render(infoStyle, "ℹ "+message)
}

// FormatSuccessMessage formats a positive outcome.
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓ "+message)
}

// FormatVerboseMessage formats supplementary detail shown only on request.
func FormatVerboseMessage(message string) string {
	return render(verboseStyle, message)
}

// FormatListItem formats a single item of a report list, indented beneath
// its header line.
func FormatListItem(item string) string {
	return "    " + item
}
