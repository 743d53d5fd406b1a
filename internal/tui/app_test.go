package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

var appWeeks = []syllabus.Week{
	{Index: 0, Title: "Functions, Variables", Link: "0/"},
	{Index: 1, Title: "Conditionals", Link: "1/"},
	{Index: 2, Title: "Loops", Link: "2/"},
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T, opened *[]string) *App {
	t.Helper()
	a := NewApp(RunOpts{
		Load: func(ctx context.Context, refresh bool) (pipeline.Result, error) {
			return pipeline.Result{Weeks: appWeeks, Source: pipeline.SourceCache}, nil
		},
		Open: func(url string) error {
			*opened = append(*opened, url)
			return nil
		},
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a.Update(weeksLoadedMsg{result: pipeline.Result{Weeks: appWeeks, Source: pipeline.SourceCache}})
	return a
}

func TestAppLoadCmd(t *testing.T) {
	var gotRefresh []bool
	a := NewApp(RunOpts{
		Load: func(ctx context.Context, refresh bool) (pipeline.Result, error) {
			gotRefresh = append(gotRefresh, refresh)
			return pipeline.Result{}, pipeline.ErrFetchUnavailable
		},
	})

	msg := a.loadCmd(false)()
	errMsg, ok := msg.(loadErrMsg)
	if !ok {
		t.Fatalf("expected loadErrMsg, got %T", msg)
	}
	a.Update(errMsg)
	if a.mode != modeNormal {
		t.Errorf("expected normal mode after load error, got %v", a.mode)
	}
	if describeErr(a.err) != "Failed to fetch syllabus" {
		t.Errorf("unexpected error text %q", describeErr(a.err))
	}
	if len(gotRefresh) != 1 || gotRefresh[0] {
		t.Errorf("expected one non-refresh load, got %v", gotRefresh)
	}
}

func TestAppNavigateAndOpen(t *testing.T) {
	var opened []string
	a := loadedApp(t, &opened)

	a.Update(key("j"))
	a.Update(key("down"))
	a.Update(key("j")) // already at the end
	if a.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", a.cursor)
	}
	a.Update(key("k"))

	_, cmd := a.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	if msg := cmd(); msg != nil {
		t.Errorf("expected nil msg from successful open, got %v", msg)
	}
	if len(opened) != 1 || opened[0] != syllabus.URL+"1/" {
		t.Errorf("unexpected opened URLs: %v", opened)
	}
}

func TestAppFilter(t *testing.T) {
	var opened []string
	a := loadedApp(t, &opened)

	a.Update(key("/"))
	if a.mode != modeSearch {
		t.Fatalf("expected search mode, got %v", a.mode)
	}
	for _, r := range "loop" {
		a.Update(key(string(r)))
	}
	a.Update(key("enter"))

	if len(a.visible) != 1 || a.visible[0].Index != 2 {
		t.Fatalf("expected only week 2 visible, got %v", a.visible)
	}

	a.Update(key("enter"))
	if len(opened) != 1 || opened[0] != syllabus.URL+"2/" {
		t.Errorf("expected week 2 opened, got %v", opened)
	}

	a.Update(key("esc"))
	if len(a.visible) != len(appWeeks) {
		t.Errorf("expected filter cleared, got %d visible", len(a.visible))
	}
}

func TestAppOpenError(t *testing.T) {
	a := NewApp(RunOpts{Open: func(string) error { return errors.New("no browser") }})
	a.Update(weeksLoadedMsg{result: pipeline.Result{Weeks: appWeeks}})
	_, cmd := a.Update(key("o"))
	a.Update(cmd())
	if a.err == nil || a.err.Error() != "no browser" {
		t.Errorf("expected open error to be shown, got %v", a.err)
	}
}

func TestAppView(t *testing.T) {
	var opened []string
	a := loadedApp(t, &opened)

	view := a.View()
	for _, want := range []string{"Conditionals", syllabus.URL + "0/", "3 weeks", "from cache"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	a.Update(key("?"))
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("expected help view")
	}
}

func TestAppQuit(t *testing.T) {
	var opened []string
	a := loadedApp(t, &opened)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
