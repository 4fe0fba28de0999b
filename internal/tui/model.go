package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"coursehub/internal/app"
	"coursehub/internal/domain"
	"coursehub/internal/views"
)

type tab int

const (
	tabDashboard tab = iota
	tabCourses
	tabSearch
	tabMessages
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "Courses", "Search", "Messages"}

type loadedMsg struct{}

type addedMsg struct{}

type searchResultsMsg []domain.Course

// Model is the Bubble Tea model for the whole application.
type Model struct {
	app     *app.App
	ctx     context.Context
	results <-chan []domain.Course

	tab      tab
	input    string
	selected int
	search   []domain.Course
	width    int
	quitting bool
}

// NewModel returns a model over a. Search results published on results are
// shown in the search tab.
func NewModel(ctx context.Context, a *app.App, results <-chan []domain.Course) *Model {
	return &Model{app: a, ctx: ctx, results: results, width: 80}
}

// Run starts the terminal UI over w and blocks until the user quits.
func Run(ctx context.Context, w *app.Wire) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan []domain.Course)
	a := app.New(w, views.OnResults(func(c []domain.Course) {
		select {
		case results <- c:
		case <-ctx.Done():
		}
	}))
	defer a.Close()

	_, err := tea.NewProgram(NewModel(ctx, a, results), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load, m.waitForResults)
}

func (m *Model) load() tea.Msg {
	_ = m.app.DashboardView.Init(m.ctx)
	_ = m.app.CoursesView.Init(m.ctx)
	return loadedMsg{}
}

func (m *Model) waitForResults() tea.Msg {
	select {
	case c := <-m.results:
		return searchResultsMsg(c)
	case <-m.ctx.Done():
		return nil
	}
}

func (m *Model) add(name string) tea.Cmd {
	return func() tea.Msg {
		_, _, _ = m.app.CoursesView.Add(m.ctx, name)
		return addedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case loadedMsg, addedMsg:
		m.clampSelection()
		return m, nil
	case searchResultsMsg:
		m.search = msg
		return m, m.waitForResults
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.switchTab((m.tab + 1) % tabCount)
		return m, nil
	case "shift+tab":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return m, nil
	}

	switch m.tab {
	case tabCourses:
		return m.handleCoursesKey(msg)
	case tabSearch:
		m.editInput(msg)
		m.app.SearchView.Search(m.input)
		return m, nil
	case tabMessages:
		if msg.String() == "ctrl+l" {
			m.app.Messages.Clear()
		}
	}
	if msg.String() == "q" && m.tab != tabSearch {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleCoursesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	courses := m.app.CoursesView.Courses()
	switch msg.String() {
	case "up":
		if m.selected > 0 {
			m.selected--
		}
	case "down":
		if m.selected < len(courses)-1 {
			m.selected++
		}
	case "ctrl+d":
		if m.selected < len(courses) {
			m.app.CoursesView.Delete(m.ctx, courses[m.selected])
			m.clampSelection()
		}
	case "enter":
		name := m.input
		m.input = ""
		return m, m.add(name)
	default:
		m.editInput(msg)
	}
	return m, nil
}

func (m *Model) editInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
	}
}

func (m *Model) switchTab(t tab) {
	m.tab = t
	m.input = ""
	m.clampSelection()
}

func (m *Model) clampSelection() {
	n := len(m.app.CoursesView.Courses())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Course Hub") + "\n\n")
	for i, name := range tabNames {
		if tab(i) == m.tab {
			b.WriteString(activeTab.Render(name))
		} else {
			b.WriteString(inactiveTab.Render(name))
		}
	}
	b.WriteString("\n\n")

	var body, hint string
	switch m.tab {
	case tabDashboard:
		body = renderCourses(m.app.DashboardView.Courses(), -1)
		hint = "tab: switch  q: quit"
	case tabCourses:
		body = "Course name: " + m.input + "█\n\n" + renderCourses(m.app.CoursesView.Courses(), m.selected)
		hint = "enter: add  up/down: select  ctrl+d: delete  tab: switch"
	case tabSearch:
		body = "Search: " + m.input + "█\n\n" + renderCourses(m.search, -1)
		hint = "type to search  tab: switch"
	case tabMessages:
		body = renderMessages(m.app.Messages.Messages())
		hint = "ctrl+l: clear  tab: switch  q: quit"
	}
	b.WriteString(boxStyle.Width(max(20, m.width-4)).Render(strings.TrimRight(body, "\n")))
	b.WriteString("\n" + hintStyle.Render(hint) + "\n")
	return b.String()
}

func renderCourses(courses []domain.Course, selected int) string {
	if len(courses) == 0 {
		return hintStyle.Render("(no courses)")
	}
	var b strings.Builder
	for i, c := range courses {
		line := idStyle.Render(fmt.Sprintf("%4d", c.ID)) + " "
		if i == selected {
			line += selectedStyle.Render("> " + c.Name)
		} else {
			line += itemStyle.Render("  " + c.Name)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderMessages(msgs []domain.Message) string {
	if len(msgs) == 0 {
		return hintStyle.Render("(no messages)")
	}
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(itemStyle.Render(m.String()) + "\n")
	}
	return b.String()
}
