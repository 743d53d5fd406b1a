package tui

import (
	"strings"

	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

// filterWeeks keeps weeks whose title contains every word of query,
// ignoring case. Indices are left untouched so they still match the syllabus.
func filterWeeks(weeks []syllabus.Week, query string) []syllabus.Week {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return weeks
	}

	var out []syllabus.Week
	for _, w := range weeks {
		title := strings.ToLower(w.Title)
		match := true
		for _, t := range terms {
			if !strings.Contains(title, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, w)
		}
	}
	return out
}
