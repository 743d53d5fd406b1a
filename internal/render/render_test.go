package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

var testWeeks = []syllabus.Week{
	{Index: 0, Title: "Functions, Variables", Link: "0/"},
	{Index: 1, Title: "Conditionals", Link: "1/"},
}

func TestWeeksPlain(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Weeks(testWeeks, syllabus.URL)
	out := buf.String()

	if !strings.Contains(out, "Weeks") {
		t.Error("expected Weeks heading")
	}
	for _, want := range []string{"0.", "Functions, Variables", "1.", "Conditionals"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b]8;;") {
		t.Error("unexpected hyperlink escape with hyperlinks disabled")
	}
}

func TestWeeksHyperlinks(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Weeks(testWeeks, syllabus.URL)
	out := buf.String()

	want := Hyperlink(syllabus.URL+"1/", "Conditionals")
	if !strings.Contains(out, want) {
		t.Errorf("expected hyperlink %q in output:\n%q", want, out)
	}
}

func TestWeekShowsFullURL(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Week(testWeeks[1], syllabus.URL)
	out := buf.String()

	if !strings.Contains(out, "Conditionals") {
		t.Errorf("expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "https://cs50.harvard.edu/python/2022/weeks/1/") {
		t.Errorf("expected full URL in output:\n%s", out)
	}
}

func TestHyperlink(t *testing.T) {
	got := Hyperlink("https://example.com", "text")
	want := "\x1b]8;;https://example.com\x1b\\text\x1b]8;;\x1b\\"
	if got != want {
		t.Errorf("Hyperlink = %q, want %q", got, want)
	}
}

func TestErrorAndHeader(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	p.Header()
	p.Error("No weeks found. Exiting.")
	out := buf.String()
	if !strings.Contains(out, CourseTitle) {
		t.Error("expected course title")
	}
	if !strings.Contains(out, "No weeks found. Exiting.") {
		t.Error("expected error message")
	}
}
