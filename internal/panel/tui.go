// Package panel is the interactive terminal countdown panel.
package panel

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/indicator"
	"github.com/amonks/ggc/internal/config"
	internalstrings "github.com/amonks/ggc/internal/strings"
	"github.com/amonks/ggc/internal/ui"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const helpSummary = "Keys: up/down move | a add | d delete | ? help | q quit"

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalAdd
)

// Options configures the panel.
type Options struct {
	Title      string
	DateFormat string
	Clock      indicator.Clock
	Order      countdown.Order
	NewID      func() string
	Logger     *log.Logger
}

type tickMsg struct {
	at time.Time
}

type disabledMsg struct{}

// rowSink keeps the latest indicator render for the list.
type rowSink struct {
	rows    []countdown.Remaining
	renders int
}

func (sink *rowSink) Render(rows []countdown.Remaining) {
	sink.rows = rows
	sink.renders++
}

type model struct {
	ind         *indicator.Indicator
	sink        *rowSink
	title       string
	dateFormat  string
	width       int
	height      int
	list        list.Model
	modal       modalKind
	form        addForm
	status      string
	statusLevel statusLevel
}

// Run shows the panel until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(opts)
	defer m.ind.Disable()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(opts Options) model {
	title := internalstrings.TrimSpace(opts.Title)
	if title == "" {
		title = config.DefaultTitle
	}

	countdowns := list.New(nil, newCountdownItemDelegate(), 0, 0)
	countdowns.SetShowTitle(false)
	countdowns.SetShowStatusBar(false)
	countdowns.SetFilteringEnabled(false)
	countdowns.SetShowHelp(false)
	countdowns.SetShowPagination(false)

	sink := &rowSink{}
	ind := indicator.New(indicator.Options{
		Presenter: sink,
		Clock:     opts.Clock,
		Order:     opts.Order,
		NewID:     opts.NewID,
		Logger:    opts.Logger,
	})

	m := model{
		ind:        ind,
		sink:       sink,
		title:      title,
		dateFormat: opts.DateFormat,
		list:       countdowns,
	}
	m.syncRows()
	return m
}

func (m model) Init() tea.Cmd {
	return m.waitForTickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		m.ind.Refresh()
		m.syncRows()
		return m, m.waitForTickCmd()
	case disabledMsg:
		return m, tea.Quit
	}

	switch m.modal {
	case modalAdd:
		return m.updateAddForm(msg)
	case modalHelp:
		return m.updateHelp(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		updated, cmd, handled := m.handleKey(key)
		if handled {
			return updated, cmd
		}
		m = updated
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading countdowns..."
	}
	if m.modal != modalNone {
		return m.renderModalOverlay()
	}

	lines := []string{
		m.renderTitleBar(),
		valueMuted.Render(truncateText(helpSummary, m.width)),
		m.renderPane(),
		m.renderSelectionLine(),
	}
	if status := m.renderStatusLine(); status != "" {
		lines = append(lines, status)
	}
	return strings.Join(lines, "\n")
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.ind.Disable()
		return m, tea.Quit, true
	case "?":
		m.modal = modalHelp
		return m, nil, true
	case "a":
		m.modal = modalAdd
		m.form = newAddForm()
		return m, nil, true
	case "d", "x", "delete":
		return m.deleteSelected(), nil, true
	case "up", "k":
		return m.moveSelection(-1), nil, true
	case "down", "j":
		return m.moveSelection(1), nil, true
	case "home":
		return m.moveSelection(-len(m.list.Items())), nil, true
	case "end":
		return m.moveSelection(len(m.list.Items())), nil, true
	}
	return m, nil, false
}

func (m model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc":
		m.modal = modalNone
	case "ctrl+c", "q":
		m.ind.Disable()
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.ind.Disable()
			return m, tea.Quit
		case "esc":
			m.modal = modalNone
			m.setStatus("Add cancelled", statusInfo)
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.form = m.form.toggleFocus()
			return m, nil
		case "enter":
			return m.submitAddForm(), nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) submitAddForm() model {
	id, err := m.ind.RequestAdd(m.form.Label(), m.form.Date())
	if err != nil {
		m.form.err = err.Error()
		m.setStatus(fmt.Sprintf("Add failed: %v", err), statusError)
		return m
	}
	m.modal = modalNone
	m.syncRows()
	m.selectID(id)
	label := m.form.Label()
	if entry, ok := m.ind.Store().Get(id); ok {
		label = entry.Label
	}
	m.setStatus(fmt.Sprintf("Added %s", label), statusInfo)
	return m
}

func (m model) deleteSelected() model {
	item, ok := m.currentItem()
	if !ok {
		m.setStatus("Nothing to delete", statusError)
		return m
	}
	m.ind.RequestDelete(item.row.ID)
	m.syncRows()
	m.setStatus(fmt.Sprintf("Deleted %s", item.row.Label), statusInfo)
	return m
}

func (m model) moveSelection(delta int) model {
	items := m.list.Items()
	if len(items) == 0 {
		return m
	}
	next := m.list.Index() + delta
	if next < 0 {
		next = 0
	}
	if next >= len(items) {
		next = len(items) - 1
	}
	m.list.Select(next)
	return m
}

func (m model) currentItem() (countdownItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return countdownItem{}, false
	}
	current, ok := item.(countdownItem)
	return current, ok
}

// syncRows copies the latest render into the list, keeping the selection.
func (m *model) syncRows() {
	selectedID := ""
	if item, ok := m.currentItem(); ok {
		selectedID = item.row.ID
	}
	index := m.list.Index()

	items := make([]list.Item, 0, len(m.sink.rows))
	for _, row := range m.sink.rows {
		items = append(items, countdownItem{row: row})
	}
	m.list.SetItems(items)

	if selectedID != "" && m.selectID(selectedID) {
		return
	}
	if index >= len(items) {
		index = len(items) - 1
	}
	if index < 0 {
		index = 0
	}
	m.list.Select(index)
}

func (m *model) selectID(id string) bool {
	for i, item := range m.list.Items() {
		if current, ok := item.(countdownItem); ok && current.row.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

func (m model) waitForTickCmd() tea.Cmd {
	ticks := m.ind.Ticks()
	done := m.ind.Done()
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case at := <-ticks:
			return tickMsg{at: at}
		case <-done:
			return disabledMsg{}
		}
	}
}

func (m *model) resize() {
	listHeight := m.contentHeight() - 2
	if listHeight < 1 {
		listHeight = 1
	}
	listWidth := m.width - 4
	if listWidth < 1 {
		listWidth = 1
	}
	m.list.SetSize(listWidth, listHeight)
}

func (m model) contentHeight() int {
	height := m.height - 4
	if height < 1 {
		height = 1
	}
	return height
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderTitleBar() string {
	title := titleStyle.Render(m.title)
	hint := valueMuted.Render("Press ? for help")
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return titleBarStyle.Width(m.width).Render(title + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderPane() string {
	content := m.list.View()
	if len(m.list.Items()) == 0 {
		content = valueMuted.Render("No countdowns. Press a to add one.")
	}
	width := m.width - 2
	if width < 0 {
		width = 0
	}
	return paneStyle.Width(width).Height(m.contentHeight() - 2).Render(content)
}

func (m model) renderSelectionLine() string {
	item, ok := m.currentItem()
	if !ok {
		return ""
	}
	text := fmt.Sprintf("%s  target %s", item.row.ID, ui.FormatTarget(item.row.Target, m.dateFormat))
	return valueMuted.Render(truncateText(text, m.width))
}

func (m model) renderStatusLine() string {
	text := m.status
	if internalstrings.IsBlank(text) {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(wordwrap.String(text, m.width))
}

func (m model) renderModalOverlay() string {
	var content string
	switch m.modal {
	case modalHelp:
		content = m.helpContent()
	case modalAdd:
		content = m.form.View()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("Countdowns"),
		"up/down or j/k: move selection",
		"a: add countdown",
		"d, x or delete: delete selected countdown",
		"",
		labelStyle.Render("Add"),
		"tab: switch between name and date",
		"enter: add",
		"esc: cancel",
		"",
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"?: toggle help",
		"",
		valueMuted.Render("Days remaining refresh every minute."),
	}
	return strings.Join(sections, "\n")
}
