package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

func renderPreview(week *syllabus.Week, base string, width, height int) string {
	if week == nil {
		return lipglossCenter("Select a week", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(
		wrapText(fmt.Sprintf("Week %d: %s", week.Index, week.Title), contentWidth),
	)
	link := previewLinkStyle.Width(contentWidth).Render(week.URL(base))
	hint := helpDimStyle.Render("enter to open in browser")

	content := lipgloss.JoinVertical(lipgloss.Left, title, link, "", hint)

	// Pad to fill height
	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
