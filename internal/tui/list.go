package tui

import (
	"fmt"
	"strings"

	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

func renderListItem(w syllabus.Week, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	index := itemIndexStyle.Render(fmt.Sprintf("%2d.", w.Index))
	title := truncateStr(w.Title, width-6)
	if selected {
		return itemSelectedStyle.Render("> ") + index + " " + itemSelectedStyle.Render(title)
	}
	return "  " + index + " " + itemTitleStyle.Render(title)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(weeks []syllabus.Week, cursor int, height int, width int) string {
	if len(weeks) == 0 {
		return lipglossCenter("No weeks match", width, height)
	}

	visible := height
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(weeks) {
		end = len(weeks)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(weeks[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
