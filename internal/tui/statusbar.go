package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, query string, width int, searching bool) string {
	left := fmt.Sprintf(" %d weeks", total)
	if query != "" {
		left = fmt.Sprintf(" %d of %d weeks · %q", shown, total, query)
	}

	right := " / search  enter open  ? help  q quit "
	if searching {
		right = " esc cancel  enter done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
