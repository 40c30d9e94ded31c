// Package tui is the terminal front end of the catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"homeinsight-catalog/internal/filter"
	"homeinsight-catalog/internal/gallery"
	"homeinsight-catalog/internal/highlight"
	"homeinsight-catalog/internal/media"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/search"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	rowHeight     = 4
	chromeHeight  = 7
)

// Controller is the part of the search coordinator the UI drives.
type Controller interface {
	Start()
	SetSearchTerm(term string)
	SetAvailabilityFilter(mode filter.Availability)
	State() search.State
}

// Options configures the browser model
type Options struct {
	Controller    Controller
	Changes       <-chan struct{}
	Resolver      media.Resolver
	Authenticated bool
}

// ChangeSignal returns a channel and a coordinator callback that signals it.
// Signals coalesce; the model always reads the latest state on receipt.
func ChangeSignal() (chan struct{}, func(search.State)) {
	ch := make(chan struct{}, 1)
	return ch, func(search.State) {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

type changedMsg struct{}

// Model is the bubbletea model for the listing browser
type Model struct {
	ctrl          Controller
	changes       <-chan struct{}
	resolver      media.Resolver
	authenticated bool

	input   textinput.Model
	spinner spinner.Model
	state   search.State
	cursor  int
	width   int
	height  int

	detail   *models.Listing
	carousel *gallery.Carousel
	quitting bool
}

// New creates the browser model
func New(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title, city, address or description"
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &Model{
		ctrl:          opts.Controller,
		changes:       opts.Changes,
		resolver:      opts.Resolver,
		authenticated: opts.Authenticated,
		input:         ti,
		spinner:       s,
		state:         opts.Controller.State(),
		width:         defaultWidth,
		height:        defaultHeight,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.start,
		m.waitForChange(),
	)
}

func (m *Model) start() tea.Msg {
	m.ctrl.Start()
	return nil
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-6, 10)
		if m.carousel != nil {
			m.carousel.SetViewportWidth(m.width)
		}
		return m, nil

	case changedMsg:
		m.refresh()
		return m, m.waitForChange()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.detail != nil {
			return m, m.updateDetail(msg)
		}
		return m, m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < len(m.state.Records)-1 {
			m.cursor++
		}
		return nil
	case tea.KeyTab:
		m.ctrl.SetAvailabilityFilter(m.state.Filter.Next())
		m.refresh()
		return nil
	case tea.KeyEnter:
		if m.cursor < len(m.state.Records) {
			m.openDetail(m.state.Records[m.cursor])
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.SetSearchTerm(after)
		m.refresh()
	}
	return cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.closeDetail()
	case "left", "h":
		if m.carousel.ShowControls() {
			m.carousel.Previous()
		}
	case "right", "l":
		if m.carousel.ShowControls() {
			m.carousel.Next()
		}
	}
	return nil
}

func (m *Model) openDetail(l models.Listing) {
	m.detail = &l
	m.carousel = gallery.New(m.resolver.ResolveAll(l.Photos), m.width)
	m.input.Blur()
}

func (m *Model) closeDetail() {
	m.detail = nil
	m.carousel = nil
	m.input.Focus()
}

func (m *Model) refresh() {
	m.state = m.ctrl.State()
	if m.cursor >= len(m.state.Records) {
		m.cursor = max(len(m.state.Records)-1, 0)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	var b strings.Builder

	scope := "public listings"
	if m.authenticated {
		scope = "signed in: all listings"
	}
	b.WriteString(titleStyle.Render("HomeInsight catalog") + " " + scopeStyle.Render(scope) + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(m.statusLine() + "\n\n")

	switch {
	case m.state.IsInitialLoading:
		b.WriteString(fmt.Sprintf("%s Loading listings...\n", m.spinner.View()))
	case len(m.state.Records) == 0:
		b.WriteString(mutedStyle.Render("No listings match.") + "\n")
	default:
		first, last := m.window()
		for i := first; i < last; i++ {
			b.WriteString(m.renderRow(i, m.state.Records[i]))
		}
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move • tab availability • enter details • esc quit"))
	return b.String()
}

func (m *Model) statusLine() string {
	parts := []string{
		fmt.Sprintf("filter: %s", m.state.Filter),
		fmt.Sprintf("%d listings", len(m.state.Records)),
	}
	if n, ok := m.matchCount(); ok {
		parts = append(parts, fmt.Sprintf("%d contain %q", n, strings.TrimSpace(m.input.Value())))
	}
	line := statusStyle.Render(strings.Join(parts, " • "))
	if m.state.IsSearching && !m.state.IsInitialLoading {
		line += " " + m.spinner.View() + statusStyle.Render(" searching")
	}
	return line
}

// matchCount counts shown records with the typed text in a searchable field.
// While a search is pending this may differ from the record count.
func (m *Model) matchCount() (int, bool) {
	q := m.input.Value()
	if strings.TrimSpace(q) == "" || len(m.state.Records) == 0 {
		return 0, false
	}
	n := 0
	for _, l := range m.state.Records {
		for _, f := range l.SearchableFields() {
			if highlight.Matches(f, q) {
				n++
				break
			}
		}
	}
	return n, true
}

// window returns the slice of rows that fits the terminal, keeping the cursor visible
func (m *Model) window() (int, int) {
	rows := max((m.height-chromeHeight)/rowHeight, 1)
	n := len(m.state.Records)
	first := 0
	if m.cursor >= rows {
		first = m.cursor - rows + 1
	}
	return first, min(first+rows, n)
}

func (m *Model) renderRow(i int, l models.Listing) string {
	q := m.state.Term
	textWidth := max(m.width-4, 20)

	marker := "  "
	title := renderHighlighted(l.Title, q, textWidth)
	if i == m.cursor {
		marker = selectedStyle.Render("> ")
	}

	var b strings.Builder
	b.WriteString(marker + title + "\n")
	b.WriteString("  " + renderHighlighted(l.City, q, 0) + mutedStyle.Render(" · ") + renderHighlighted(l.Address, q, textWidth/2) + "\n")
	b.WriteString("  " + renderHighlighted(l.Description, q, textWidth) + "\n")
	b.WriteString("  " + mutedStyle.Render(l.CompanyName()) + " " + formatMoney(l.Value) + " " + renderAvailability(l) + "\n")
	return b.String()
}

func (m *Model) viewDetail() string {
	l := m.detail
	q := m.state.Term

	rows := []string{
		titleStyle.Render(l.Title),
		"",
		labelStyle.Render("Company") + l.CompanyName(),
		labelStyle.Render("Type") + typeLabel(l.Type),
		labelStyle.Render("City") + renderHighlighted(l.City, q, 0),
		labelStyle.Render("Address") + renderHighlighted(l.Address, q, 0),
		labelStyle.Render("Value") + formatMoney(l.Value),
		labelStyle.Render("Rent") + formatMoney(l.RentValue),
		labelStyle.Render("Status") + renderAvailability(*l),
		"",
		lipgloss.NewStyle().Width(max(m.width-6, 20)).Render(renderHighlighted(l.Description, q, 0)),
		"",
		m.viewGallery(),
	}

	help := "esc back"
	if m.carousel.ShowControls() {
		help = "←/→ photos • " + help
	}
	return detailStyle.Render(strings.Join(rows, "\n")) + "\n" + helpStyle.Render(help)
}

func (m *Model) viewGallery() string {
	photos := m.carousel.Photos()
	if len(photos) == 0 {
		return mutedStyle.Render("No photos")
	}
	idx := m.carousel.Index()
	header := fmt.Sprintf("Photo %d of %d", idx+1, len(photos))
	if m.carousel.ShowControls() {
		header = "‹ " + header + " ›"
	}
	return header + "\n" + selectedStyle.Render(m.carousel.Current())
}
