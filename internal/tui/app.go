package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kakimtched/cs50p-final-project/internal/browser"
	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
	"github.com/kakimtched/cs50p-final-project/internal/render"
	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

type mode int

const (
	modeLoading mode = iota
	modeNormal
	modeSearch
	modeHelp
)

// Loader runs the fetch pipeline. refresh skips the cache read.
type Loader func(ctx context.Context, refresh bool) (pipeline.Result, error)

type App struct {
	load Loader
	open func(url string) error
	base string

	weeks   []syllabus.Week
	visible []syllabus.Week
	source  pipeline.Source
	cursor  int
	mode    mode

	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model

	err error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Load Loader
	// Open defaults to browser.Open.
	Open func(url string) error
	Base string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Filter weeks..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	open := opts.Open
	if open == nil {
		open = browser.Open
	}
	base := opts.Base
	if base == "" {
		base = syllabus.URL
	}

	return &App{
		load:        opts.Load,
		open:        open,
		base:        base,
		mode:        modeLoading,
		searchInput: ti,
		spinner:     sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(false), a.spinner.Tick)
}

func (a *App) loadCmd(refresh bool) tea.Cmd {
	load := a.load
	return func() tea.Msg {
		res, err := load(context.Background(), refresh)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return weeksLoadedMsg{result: res}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		if a.mode != modeLoading {
			a.err = nil
		}
		return a.handleKey(msg)

	case weeksLoadedMsg:
		a.weeks = msg.result.Weeks
		a.source = msg.result.Source
		a.mode = modeNormal
		a.applyFilter()
		return a, nil

	case loadErrMsg:
		a.err = msg.err
		a.mode = modeNormal
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) applyFilter() {
	a.visible = filterWeeks(a.weeks, a.searchInput.Value())
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
}

func (a *App) selected() *syllabus.Week {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeLoading:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.visible)-1)
		return a, nil
	case "o", "enter":
		if w := a.selected(); w != nil {
			return a, a.openCmd(w.URL(a.base))
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		a.searchInput.SetValue("")
		a.applyFilter()
		return a, nil
	case "r":
		a.mode = modeLoading
		return a, tea.Batch(a.loadCmd(true), a.spinner.Tick)
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.applyFilter()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.cursor = 0
	a.applyFilter()
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render("cs50p")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	if a.mode == modeLoading {
		msg := a.spinner.View() + " Loading syllabus..."
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
	}

	headerHeight := 1
	searchHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - searchHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.45)
	previewWidth := a.width - listWidth

	headerLeft := headerStyle.Render(render.CourseTitle)
	headerRight := ""
	if a.source != "" {
		headerRight = headerSourceStyle.Render("from " + string(a.source) + " ")
	}
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	search := ""
	if a.mode == modeSearch || a.searchInput.Value() != "" {
		search = a.searchInput.View()
	}

	listContent := renderList(a.visible, a.cursor, contentHeight, listWidth-4)
	listPane := listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	previewContent := renderPreview(a.selected(), a.base, previewWidth-4, contentHeight)
	previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := renderStatusBar(len(a.visible), len(a.weeks), a.searchInput.Value(), a.width, a.mode == modeSearch)
	if a.err != nil {
		status = errorStyle.Render(describeErr(a.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, content, status)
}

func (a *App) renderHelp() string {
	title := headerStyle.Render("cs50p")
	dim := helpDimStyle

	help := title + dim.Render(" - Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move between weeks\n" +
		"  g/G           First / last week\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open week in browser\n" +
		"  /             Filter weeks by title\n" +
		"  esc           Clear filter\n" +
		"  r             Fetch the syllabus again\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func describeErr(err error) string {
	switch {
	case errors.Is(err, pipeline.ErrFetchUnavailable):
		return "Failed to fetch syllabus"
	case errors.Is(err, pipeline.ErrNoData):
		return "No weeks found"
	default:
		return strings.TrimSpace(err.Error())
	}
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
