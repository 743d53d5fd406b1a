package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

const CourseTitle = "CS50’s Introduction to Programming with Python"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorIndex   = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F5C542"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#F25D94"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	indexStyle   = lipgloss.NewStyle().Foreground(colorIndex)
	linkStyle    = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	statusStyle  = lipgloss.NewStyle().Foreground(colorPrimary)
)

type Printer struct {
	w          io.Writer
	hyperlinks bool
}

func New(w io.Writer, hyperlinks bool) *Printer {
	return &Printer{w: w, hyperlinks: hyperlinks}
}

func (p *Printer) Header() {
	fmt.Fprintf(p.w, "\n%s\n\n", headerStyle.Render(CourseTitle))
}

// Weeks prints one entry per week; with hyperlinks on, each title links to
// the week's page.
func (p *Printer) Weeks(weeks []syllabus.Week, base string) {
	fmt.Fprintf(p.w, "%s\n\n", sectionStyle.Render("Weeks"))
	for _, w := range weeks {
		title := w.Title
		if p.hyperlinks {
			title = Hyperlink(w.URL(base), title)
		}
		fmt.Fprintf(p.w, "%s %s\n\n", indexStyle.Render(fmt.Sprintf("%d.", w.Index)), title)
	}
}

// Week prints a single week with its full URL.
func (p *Printer) Week(w syllabus.Week, base string) {
	fmt.Fprintf(p.w, "\n%s %s\n", indexStyle.Render(fmt.Sprintf("%d.", w.Index)), w.Title)
	fmt.Fprintf(p.w, "%s\n\n", linkStyle.Render(w.URL(base)))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "\n%s\n\n", errorStyle.Render(msg))
}

func (p *Printer) Status(msg string) {
	fmt.Fprintln(p.w, statusStyle.Render(msg))
}

// Hyperlink wraps text in an OSC 8 terminal hyperlink.
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
