package panel

import (
	"fmt"
	"io"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/internal/ui"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type countdownItem struct {
	row countdown.Remaining
}

func (item countdownItem) FilterValue() string {
	return item.row.Label
}

type countdownItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	pastStyle     lipgloss.Style
}

func newCountdownItemDelegate() countdownItemDelegate {
	return countdownItemDelegate{
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		pastStyle:     pastStyle,
	}
}

func (d countdownItemDelegate) Height() int                             { return 1 }
func (d countdownItemDelegate) Spacing() int                            { return 0 }
func (d countdownItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d countdownItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(countdownItem)
	if !ok {
		return
	}

	line := truncateText(ui.FormatCountdown(item.row.Label, item.row.Days), m.Width())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.row.Days <= 0 {
		style = d.pastStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
